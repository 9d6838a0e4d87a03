package models

import "time"

// User is a student account. Aggregate quiz stats are recomputed by the
// quiz-submit handler, not by the store.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	Grade        int    `json:"grade"`
	Streak       int    `json:"streak"`
	TotalQuizzes int    `json:"totalQuizzes"`
	AverageScore int    `json:"averageScore"`
}

type Subject struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	TotalChapters int    `json:"totalChapters"`
	Description   string `json:"description"`
}

// Question options keep their display order; a nil slice means the question
// has no fixed options (fill/essay types).
type Question struct {
	ID            int      `json:"id"`
	SubjectID     int      `json:"subjectId"`
	Grade         int      `json:"grade"`
	Chapter       string   `json:"chapter"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Type          string   `json:"type"`
}

type Quiz struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	SubjectID      int       `json:"subjectId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeSpent      int       `json:"timeSpent"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Doubt struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	SubjectID int       `json:"subjectId"`
	Question  string    `json:"question"`
	Answer    *string   `json:"answer"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreativeTask struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Prompt      string `json:"prompt"`
}

type ThinkingChallenge struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Hint        *string `json:"hint"`
	Solution    *string `json:"solution"`
}

type MythFact struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Statement   string `json:"statement"`
	IsMyth      bool   `json:"isMyth"`
	Explanation string `json:"explanation"`
	Category    string `json:"category"`
}

type DailyLifeQuestion struct {
	ID                  int    `json:"id"`
	Question            string `json:"question"`
	Answer              string `json:"answer"`
	SubjectID           int    `json:"subjectId"`
	RealWorldConnection string `json:"realWorldConnection"`
}

type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Context   *string   `json:"context"`
	CreatedAt time.Time `json:"createdAt"`
}
