package storage

import (
	"context"
	"testing"
	"time"

	"studybuddy/internal/models"
)

func TestCreateUserAppliesDefaults(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.InsertUser{Username: "asha", Password: "secret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID < 1 {
		t.Fatalf("expected assigned id >= 1, got %d", created.ID)
	}
	if created.Grade != 6 || created.Streak != 0 || created.TotalQuizzes != 0 || created.AverageScore != 0 {
		t.Fatalf("defaults not applied: %+v", created)
	}

	got, err := s.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got == nil || *got != *created {
		t.Fatalf("roundtrip mismatch: created %+v, got %+v", created, got)
	}
}

func TestGetUserAbsentReturnsNilNil(t *testing.T) {
	s := NewMemStorage()
	got, err := s.GetUser(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestUpdateAbsentReturnsNilNil(t *testing.T) {
	s := NewMemStorage()
	score := 50
	quiz, err := s.UpdateQuiz(context.Background(), 42, models.QuizUpdate{Score: &score})
	if err != nil {
		t.Fatalf("UpdateQuiz: %v", err)
	}
	if quiz != nil {
		t.Fatalf("expected nil for absent id, got %+v", quiz)
	}
}

func TestIDsSharedAcrossEntityKinds(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	user, _ := s.CreateUser(ctx, models.InsertUser{Username: "asha", Password: "secret"})
	subject, _ := s.CreateSubject(ctx, models.InsertSubject{
		Name: "Mathematics", Icon: "calculator", Color: "blue", TotalChapters: 12, Description: "Algebra & more",
	})
	if subject.ID != user.ID+1 {
		t.Fatalf("expected one shared counter, got user %d then subject %d", user.ID, subject.ID)
	}
}

func TestUpdateUserPartialIsIdempotent(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	user, _ := s.CreateUser(ctx, models.InsertUser{Username: "asha", Password: "secret"})
	streak := 4
	first, err := s.UpdateUser(ctx, user.ID, models.UserUpdate{Streak: &streak})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	second, err := s.UpdateUser(ctx, user.ID, models.UserUpdate{Streak: &streak})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if *first != *second {
		t.Fatalf("repeated partial update changed the record: %+v vs %+v", first, second)
	}
	if second.Username != "asha" || second.Grade != 6 {
		t.Fatalf("fields absent from the partial were changed: %+v", second)
	}
	if second.Streak != 4 {
		t.Fatalf("streak not updated: %+v", second)
	}
}

func TestQuestionsFilterIsExactAndLimited(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := s.CreateQuestion(ctx, models.InsertQuestion{
			SubjectID: 1, Grade: 6, Chapter: "Algebra", Question: "q", CorrectAnswer: "a",
		}); err != nil {
			t.Fatalf("CreateQuestion: %v", err)
		}
	}
	// Different subject and different grade must never leak into the result.
	s.CreateQuestion(ctx, models.InsertQuestion{SubjectID: 2, Grade: 6, Chapter: "Algebra", Question: "q", CorrectAnswer: "a"})
	s.CreateQuestion(ctx, models.InsertQuestion{SubjectID: 1, Grade: 7, Chapter: "Algebra", Question: "q", CorrectAnswer: "a"})

	defaulted, err := s.QuestionsBySubjectAndGrade(ctx, 1, 6, 0)
	if err != nil {
		t.Fatalf("QuestionsBySubjectAndGrade: %v", err)
	}
	if len(defaulted) != 10 {
		t.Fatalf("expected default limit 10, got %d", len(defaulted))
	}
	all, _ := s.QuestionsBySubjectAndGrade(ctx, 1, 6, 100)
	if len(all) != 12 {
		t.Fatalf("expected 12 matching questions, got %d", len(all))
	}
	for _, q := range all {
		if q.SubjectID != 1 || q.Grade != 6 {
			t.Fatalf("filter returned non-matching record: %+v", q)
		}
	}
}

func TestQuestionDefaults(t *testing.T) {
	s := NewMemStorage()
	q, err := s.CreateQuestion(context.Background(), models.InsertQuestion{
		SubjectID: 1, Grade: 6, Chapter: "Algebra", Question: "What is 2+2?", CorrectAnswer: "4",
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if q.Difficulty != "medium" || q.Type != "mcq" {
		t.Fatalf("defaults not applied: %+v", q)
	}
}

func TestDoubtStatusDefaultsToPending(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	d, err := s.CreateDoubt(ctx, models.InsertDoubt{UserID: 1, SubjectID: 1, Question: "Why is the sky blue?"})
	if err != nil {
		t.Fatalf("CreateDoubt: %v", err)
	}
	if d.Status != "pending" || d.Answer != nil {
		t.Fatalf("expected pending unanswered doubt, got %+v", d)
	}

	answer := "Rayleigh scattering."
	answered := "answered"
	updated, err := s.UpdateDoubt(ctx, d.ID, models.DoubtUpdate{Answer: &answer, Status: &answered})
	if err != nil {
		t.Fatalf("UpdateDoubt: %v", err)
	}
	if updated.Status != "answered" || updated.Answer == nil || *updated.Answer != answer {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Question != d.Question {
		t.Fatalf("question changed by unrelated update: %+v", updated)
	}
}

func TestChatMessagesMostRecentFirst(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		if _, err := s.CreateChatMessage(ctx, models.InsertChatMessage{
			UserID: 1, Message: "hi", Response: "hello", CreatedAt: &at,
		}); err != nil {
			t.Fatalf("CreateChatMessage: %v", err)
		}
	}
	s.CreateChatMessage(ctx, models.InsertChatMessage{UserID: 2, Message: "hi", Response: "hello", CreatedAt: &base})

	messages, err := s.ChatMessagesByUser(ctx, 1, 0)
	if err != nil {
		t.Fatalf("ChatMessagesByUser: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages for user 1, got %d", len(messages))
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].CreatedAt.After(messages[i-1].CreatedAt) {
			t.Fatalf("messages not most-recent-first: %v then %v", messages[i-1].CreatedAt, messages[i].CreatedAt)
		}
	}

	limited, _ := s.ChatMessagesByUser(ctx, 1, 2)
	if len(limited) != 2 {
		t.Fatalf("expected limit to truncate to 2, got %d", len(limited))
	}
	if !limited[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("truncation dropped the newest message: %+v", limited[0])
	}
}

func TestSubjectListScenario(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	if _, err := s.CreateSubject(ctx, models.InsertSubject{
		Name: "Mathematics", Icon: "calculator", Color: "blue", TotalChapters: 12,
		Description: "Algebra, Geometry, Statistics & more",
	}); err != nil {
		t.Fatalf("CreateSubject: %v", err)
	}

	subjects, err := s.AllSubjects(ctx)
	if err != nil {
		t.Fatalf("AllSubjects: %v", err)
	}
	if len(subjects) != 1 || subjects[0].Name != "Mathematics" || subjects[0].ID < 1 {
		t.Fatalf("unexpected subject list: %+v", subjects)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, s); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	subjects, _ := s.AllSubjects(ctx)
	if len(subjects) != 7 {
		t.Fatalf("expected 7 seeded subjects, got %d", len(subjects))
	}
	tasks, _ := s.AllCreativeTasks(ctx)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 seeded creative tasks, got %d", len(tasks))
	}
}
