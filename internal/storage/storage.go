package storage

import (
	"context"

	"studybuddy/internal/models"
)

// Storage is the persistence contract shared by the in-memory and Postgres
// implementations. Create methods assign the id and apply defaults for
// omitted optional fields. Lookups and updates on an unknown id return
// (nil, nil): absence is a normal outcome, not an error. A non-nil error
// always means the backend itself failed; the in-memory implementation never
// returns one.
type Storage interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error)

	AllSubjects(ctx context.Context) ([]models.Subject, error)
	GetSubject(ctx context.Context, id int) (*models.Subject, error)
	CreateSubject(ctx context.Context, in models.InsertSubject) (*models.Subject, error)

	QuestionsBySubjectAndGrade(ctx context.Context, subjectID, grade, limit int) ([]models.Question, error)
	QuestionsByChapter(ctx context.Context, subjectID, grade int, chapter string) ([]models.Question, error)
	CreateQuestion(ctx context.Context, in models.InsertQuestion) (*models.Question, error)

	CreateQuiz(ctx context.Context, in models.InsertQuiz) (*models.Quiz, error)
	QuizzesByUser(ctx context.Context, userID int) ([]models.Quiz, error)
	UpdateQuiz(ctx context.Context, id int, upd models.QuizUpdate) (*models.Quiz, error)

	CreateDoubt(ctx context.Context, in models.InsertDoubt) (*models.Doubt, error)
	DoubtsByUser(ctx context.Context, userID int) ([]models.Doubt, error)
	UpdateDoubt(ctx context.Context, id int, upd models.DoubtUpdate) (*models.Doubt, error)

	AllCreativeTasks(ctx context.Context) ([]models.CreativeTask, error)
	CreativeTasksByCategory(ctx context.Context, category string) ([]models.CreativeTask, error)
	CreateCreativeTask(ctx context.Context, in models.InsertCreativeTask) (*models.CreativeTask, error)

	AllThinkingChallenges(ctx context.Context) ([]models.ThinkingChallenge, error)
	ThinkingChallengesByType(ctx context.Context, challengeType string) ([]models.ThinkingChallenge, error)
	CreateThinkingChallenge(ctx context.Context, in models.InsertThinkingChallenge) (*models.ThinkingChallenge, error)

	AllMythFacts(ctx context.Context) ([]models.MythFact, error)
	CreateMythFact(ctx context.Context, in models.InsertMythFact) (*models.MythFact, error)

	AllDailyLifeQuestions(ctx context.Context) ([]models.DailyLifeQuestion, error)
	DailyLifeQuestionsBySubject(ctx context.Context, subjectID int) ([]models.DailyLifeQuestion, error)
	CreateDailyLifeQuestion(ctx context.Context, in models.InsertDailyLifeQuestion) (*models.DailyLifeQuestion, error)

	CreateChatMessage(ctx context.Context, in models.InsertChatMessage) (*models.ChatMessage, error)
	// ChatMessagesByUser returns the user's messages most-recent-first,
	// truncated to limit (default 50 when limit <= 0).
	ChatMessagesByUser(ctx context.Context, userID, limit int) ([]models.ChatMessage, error)
}

const (
	defaultQuestionLimit = 10
	defaultChatLimit     = 50
)
