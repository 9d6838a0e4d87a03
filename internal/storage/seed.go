package storage

import (
	"context"
	"fmt"

	"studybuddy/internal/models"
)

func ptr[T any](v T) *T { return &v }

// Seed loads the default subjects and a starter set of activities. It is a
// no-op when subjects already exist, so it is safe to run on every startup
// against a persistent store.
func Seed(ctx context.Context, s Storage) error {
	existing, err := s.AllSubjects(ctx)
	if err != nil {
		return fmt.Errorf("seed: list subjects: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	subjects := []models.InsertSubject{
		{Name: "Mathematics", Icon: "calculator", Color: "blue", TotalChapters: 12, Description: "Algebra, Geometry, Statistics & more"},
		{Name: "Science", Icon: "flask", Color: "green", TotalChapters: 15, Description: "Physics, Chemistry, Biology"},
		{Name: "Social Science", Icon: "globe-americas", Color: "yellow", TotalChapters: 18, Description: "History, Geography, Civics"},
		{Name: "English", Icon: "book", Color: "purple", TotalChapters: 10, Description: "Literature, Grammar, Writing"},
		{Name: "Hindi", Icon: "language", Color: "orange", TotalChapters: 14, Description: "Literature, Grammar, Composition"},
		{Name: "Sanskrit", Icon: "om", Color: "red", TotalChapters: 8, Description: "Shlokas, Grammar, Literature"},
		{Name: "Reasoning and IQ", Icon: "brain", Color: "indigo", TotalChapters: 15, Description: "Logic, critical thinking, and problem-solving skills"},
	}
	for _, sub := range subjects {
		if _, err := s.CreateSubject(ctx, sub); err != nil {
			return fmt.Errorf("seed: subject %q: %w", sub.Name, err)
		}
	}

	tasks := []models.InsertCreativeTask{
		{
			Title:       "Story Writing Challenge",
			Description: "Write a short story using the words: mystery, bicycle, and rainbow",
			Category:    "writing",
			Difficulty:  "medium",
			Prompt:      "Weave all three words into a story of at least 300 words with a clear beginning, middle and end.",
		},
		{
			Title:       "Invention Showcase",
			Description: "Design an invention that solves a problem in your daily life",
			Category:    "project",
			Difficulty:  "hard",
			Prompt:      "Sketch the invention, name it, and write a one-page pitch explaining the problem it solves and how it works.",
		},
		{
			Title:       "Poetry Corner",
			Description: "Create a poem about your favorite season using metaphors",
			Category:    "writing",
			Difficulty:  "easy",
			Prompt:      "Write at least eight lines and use a minimum of three metaphors. Read it aloud to check the rhythm.",
		},
	}
	for _, t := range tasks {
		if _, err := s.CreateCreativeTask(ctx, t); err != nil {
			return fmt.Errorf("seed: creative task %q: %w", t.Title, err)
		}
	}

	challenges := []models.InsertThinkingChallenge{
		{
			Title:       "The Bridge Crossing Puzzle",
			Description: "Four people need to cross a bridge at night with only one flashlight. How do they all get across in 17 minutes?",
			Type:        "brain_teaser",
			Hint:        ptr("Think about who should go together and who should bring the flashlight back"),
			Solution:    ptr("The two fastest cross first, fastest returns, two slowest cross together, second fastest returns, then both fastest cross again"),
		},
		{
			Title:       "Pattern Recognition",
			Description: "What comes next in this sequence: 2, 6, 12, 20, 30, ?",
			Type:        "lateral_thinking",
			Hint:        ptr("Look at the differences between consecutive numbers"),
			Solution:    ptr("42 (the differences are 4, 6, 8, 10, so next difference is 12)"),
		},
	}
	for _, c := range challenges {
		if _, err := s.CreateThinkingChallenge(ctx, c); err != nil {
			return fmt.Errorf("seed: thinking challenge %q: %w", c.Title, err)
		}
	}

	facts := []models.InsertMythFact{
		{
			Title:       "Lightning's Favorite Spot",
			Statement:   "Lightning never strikes the same place twice",
			IsMyth:      true,
			Explanation: "Lightning can and does strike the same place multiple times. The Empire State Building is struck about 25 times per year.",
			Category:    "science",
		},
		{
			Title:       "The Goldfish Memory Test",
			Statement:   "Goldfish have a 3-second memory",
			IsMyth:      true,
			Explanation: "Goldfish actually have memories that last months, not seconds. They can be trained to respond to colors, sounds and other cues.",
			Category:    "science",
		},
	}
	for _, f := range facts {
		if _, err := s.CreateMythFact(ctx, f); err != nil {
			return fmt.Errorf("seed: myth fact %q: %w", f.Title, err)
		}
	}

	return nil
}
