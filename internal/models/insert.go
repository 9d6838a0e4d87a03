package models

import "time"

// Insert payloads mirror the entity fields minus the id. Optional fields are
// pointers; the store applies the default when a pointer is nil. Unknown JSON
// fields are dropped during decoding.

type InsertUser struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	Grade        *int   `json:"grade" validate:"omitempty,min=6,max=12"`
	Streak       *int   `json:"streak" validate:"omitempty,min=0"`
	TotalQuizzes *int   `json:"totalQuizzes" validate:"omitempty,min=0"`
	AverageScore *int   `json:"averageScore" validate:"omitempty,min=0,max=100"`
}

type InsertSubject struct {
	Name          string `json:"name" validate:"required"`
	Icon          string `json:"icon" validate:"required"`
	Color         string `json:"color" validate:"required"`
	TotalChapters int    `json:"totalChapters" validate:"required,min=1"`
	Description   string `json:"description" validate:"required"`
}

type InsertQuestion struct {
	SubjectID     int      `json:"subjectId" validate:"required,min=1"`
	Grade         int      `json:"grade" validate:"required,min=1"`
	Chapter       string   `json:"chapter" validate:"required"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   *string  `json:"explanation"`
	Difficulty    *string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Type          *string  `json:"type" validate:"omitempty,oneof=mcq fill essay"`
}

type InsertQuiz struct {
	UserID         int        `json:"userId" validate:"required,min=1"`
	SubjectID      int        `json:"subjectId" validate:"required,min=1"`
	Score          int        `json:"score" validate:"min=0,max=100"`
	TotalQuestions int        `json:"totalQuestions" validate:"required,min=1"`
	TimeSpent      int        `json:"timeSpent" validate:"min=0"`
	Completed      *bool      `json:"completed"`
	CreatedAt      *time.Time `json:"createdAt"`
}

type InsertDoubt struct {
	UserID    int     `json:"userId" validate:"required,min=1"`
	SubjectID int     `json:"subjectId" validate:"required,min=1"`
	Question  string  `json:"question" validate:"required,min=10"`
	Answer    *string `json:"answer"`
	Status    *string `json:"status" validate:"omitempty,oneof=pending answered"`
}

type InsertCreativeTask struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required"`
	Prompt      string `json:"prompt" validate:"required"`
}

type InsertThinkingChallenge struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Hint        *string `json:"hint"`
	Solution    *string `json:"solution"`
}

type InsertMythFact struct {
	Title       string `json:"title" validate:"required"`
	Statement   string `json:"statement" validate:"required"`
	IsMyth      bool   `json:"isMyth"`
	Explanation string `json:"explanation" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

type InsertDailyLifeQuestion struct {
	Question            string `json:"question" validate:"required"`
	Answer              string `json:"answer" validate:"required"`
	SubjectID           int    `json:"subjectId" validate:"required,min=1"`
	RealWorldConnection string `json:"realWorldConnection" validate:"required"`
}

type InsertChatMessage struct {
	UserID    int        `json:"userId" validate:"required,min=1"`
	Message   string     `json:"message" validate:"required"`
	Response  string     `json:"response" validate:"required"`
	Context   *string    `json:"context"`
	CreatedAt *time.Time `json:"createdAt"`
}

// Partial updates: nil pointers leave the stored field unchanged.

type UserUpdate struct {
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	Grade        *int    `json:"grade"`
	Streak       *int    `json:"streak"`
	TotalQuizzes *int    `json:"totalQuizzes"`
	AverageScore *int    `json:"averageScore"`
}

type QuizUpdate struct {
	Score          *int  `json:"score"`
	TotalQuestions *int  `json:"totalQuestions"`
	TimeSpent      *int  `json:"timeSpent"`
	Completed      *bool `json:"completed"`
}

type DoubtUpdate struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Status   *string `json:"status"`
}
