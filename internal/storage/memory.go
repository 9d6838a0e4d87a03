package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"studybuddy/internal/models"
)

// MemStorage keeps every table in a map guarded by one mutex. Ids come from
// a single counter shared across all entity kinds, so they are unique and
// monotonic process-wide but not dense per table. Nothing survives a
// restart.
type MemStorage struct {
	mu sync.RWMutex

	users              map[int]models.User
	subjects           map[int]models.Subject
	questions          map[int]models.Question
	quizzes            map[int]models.Quiz
	doubts             map[int]models.Doubt
	creativeTasks      map[int]models.CreativeTask
	thinkingChallenges map[int]models.ThinkingChallenge
	mythFacts          map[int]models.MythFact
	dailyLifeQuestions map[int]models.DailyLifeQuestion
	chatMessages       map[int]models.ChatMessage

	nextID int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:              make(map[int]models.User),
		subjects:           make(map[int]models.Subject),
		questions:          make(map[int]models.Question),
		quizzes:            make(map[int]models.Quiz),
		doubts:             make(map[int]models.Doubt),
		creativeTasks:      make(map[int]models.CreativeTask),
		thinkingChallenges: make(map[int]models.ThinkingChallenge),
		mythFacts:          make(map[int]models.MythFact),
		dailyLifeQuestions: make(map[int]models.DailyLifeQuestion),
		chatMessages:       make(map[int]models.ChatMessage),
		nextID:             1,
	}
}

func (s *MemStorage) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func timeOr(p *time.Time, def time.Time) time.Time {
	if p != nil {
		return *p
	}
	return def
}

// Users

func (s *MemStorage) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(_ context.Context, in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:           s.allocID(),
		Username:     in.Username,
		Password:     in.Password,
		Grade:        intOr(in.Grade, 6),
		Streak:       intOr(in.Streak, 0),
		TotalQuizzes: intOr(in.TotalQuizzes, 0),
		AverageScore: intOr(in.AverageScore, 0),
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemStorage) UpdateUser(_ context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Grade != nil {
		u.Grade = *upd.Grade
	}
	if upd.Streak != nil {
		u.Streak = *upd.Streak
	}
	if upd.TotalQuizzes != nil {
		u.TotalQuizzes = *upd.TotalQuizzes
	}
	if upd.AverageScore != nil {
		u.AverageScore = *upd.AverageScore
	}
	s.users[id] = u
	return &u, nil
}

// Subjects

func (s *MemStorage) AllSubjects(_ context.Context) ([]models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Subject, 0, len(s.subjects))
	for _, sub := range s.subjects {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) GetSubject(_ context.Context, id int) (*models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.subjects[id]; ok {
		return &sub, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateSubject(_ context.Context, in models.InsertSubject) (*models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := models.Subject{
		ID:            s.allocID(),
		Name:          in.Name,
		Icon:          in.Icon,
		Color:         in.Color,
		TotalChapters: in.TotalChapters,
		Description:   in.Description,
	}
	s.subjects[sub.ID] = sub
	return &sub, nil
}

// Questions

func (s *MemStorage) QuestionsBySubjectAndGrade(_ context.Context, subjectID, grade, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = defaultQuestionLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Question
	for _, q := range s.questions {
		if q.SubjectID == subjectID && q.Grade == grade {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStorage) QuestionsByChapter(_ context.Context, subjectID, grade int, chapter string) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Question
	for _, q := range s.questions {
		if q.SubjectID == subjectID && q.Grade == grade && q.Chapter == chapter {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) CreateQuestion(_ context.Context, in models.InsertQuestion) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := models.Question{
		ID:            s.allocID(),
		SubjectID:     in.SubjectID,
		Grade:         in.Grade,
		Chapter:       in.Chapter,
		Question:      in.Question,
		Options:       append([]string(nil), in.Options...),
		CorrectAnswer: in.CorrectAnswer,
		Explanation:   in.Explanation,
		Difficulty:    strOr(in.Difficulty, "medium"),
		Type:          strOr(in.Type, "mcq"),
	}
	s.questions[q.ID] = q
	return &q, nil
}

// Quizzes

func (s *MemStorage) CreateQuiz(_ context.Context, in models.InsertQuiz) (*models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := models.Quiz{
		ID:             s.allocID(),
		UserID:         in.UserID,
		SubjectID:      in.SubjectID,
		Score:          in.Score,
		TotalQuestions: in.TotalQuestions,
		TimeSpent:      in.TimeSpent,
		Completed:      boolOr(in.Completed, false),
		CreatedAt:      timeOr(in.CreatedAt, time.Now()),
	}
	s.quizzes[q.ID] = q
	return &q, nil
}

func (s *MemStorage) QuizzesByUser(_ context.Context, userID int) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Quiz
	for _, q := range s.quizzes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) UpdateQuiz(_ context.Context, id int, upd models.QuizUpdate) (*models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[id]
	if !ok {
		return nil, nil
	}
	if upd.Score != nil {
		q.Score = *upd.Score
	}
	if upd.TotalQuestions != nil {
		q.TotalQuestions = *upd.TotalQuestions
	}
	if upd.TimeSpent != nil {
		q.TimeSpent = *upd.TimeSpent
	}
	if upd.Completed != nil {
		q.Completed = *upd.Completed
	}
	s.quizzes[id] = q
	return &q, nil
}

// Doubts

func (s *MemStorage) CreateDoubt(_ context.Context, in models.InsertDoubt) (*models.Doubt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.Doubt{
		ID:        s.allocID(),
		UserID:    in.UserID,
		SubjectID: in.SubjectID,
		Question:  in.Question,
		Answer:    in.Answer,
		Status:    strOr(in.Status, "pending"),
		CreatedAt: time.Now(),
	}
	s.doubts[d.ID] = d
	return &d, nil
}

func (s *MemStorage) DoubtsByUser(_ context.Context, userID int) ([]models.Doubt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Doubt
	for _, d := range s.doubts {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) UpdateDoubt(_ context.Context, id int, upd models.DoubtUpdate) (*models.Doubt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.doubts[id]
	if !ok {
		return nil, nil
	}
	if upd.Question != nil {
		d.Question = *upd.Question
	}
	if upd.Answer != nil {
		d.Answer = upd.Answer
	}
	if upd.Status != nil {
		d.Status = *upd.Status
	}
	s.doubts[id] = d
	return &d, nil
}

// Creative tasks

func (s *MemStorage) AllCreativeTasks(_ context.Context) ([]models.CreativeTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CreativeTask, 0, len(s.creativeTasks))
	for _, t := range s.creativeTasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) CreativeTasksByCategory(_ context.Context, category string) ([]models.CreativeTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CreativeTask
	for _, t := range s.creativeTasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) CreateCreativeTask(_ context.Context, in models.InsertCreativeTask) (*models.CreativeTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := models.CreativeTask{
		ID:          s.allocID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		Prompt:      in.Prompt,
	}
	s.creativeTasks[t.ID] = t
	return &t, nil
}

// Thinking challenges

func (s *MemStorage) AllThinkingChallenges(_ context.Context) ([]models.ThinkingChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ThinkingChallenge, 0, len(s.thinkingChallenges))
	for _, c := range s.thinkingChallenges {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) ThinkingChallengesByType(_ context.Context, challengeType string) ([]models.ThinkingChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ThinkingChallenge
	for _, c := range s.thinkingChallenges {
		if c.Type == challengeType {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) CreateThinkingChallenge(_ context.Context, in models.InsertThinkingChallenge) (*models.ThinkingChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.ThinkingChallenge{
		ID:          s.allocID(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Hint:        in.Hint,
		Solution:    in.Solution,
	}
	s.thinkingChallenges[c.ID] = c
	return &c, nil
}

// Myth facts

func (s *MemStorage) AllMythFacts(_ context.Context) ([]models.MythFact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MythFact, 0, len(s.mythFacts))
	for _, m := range s.mythFacts {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) CreateMythFact(_ context.Context, in models.InsertMythFact) (*models.MythFact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.MythFact{
		ID:          s.allocID(),
		Title:       in.Title,
		Statement:   in.Statement,
		IsMyth:      in.IsMyth,
		Explanation: in.Explanation,
		Category:    in.Category,
	}
	s.mythFacts[m.ID] = m
	return &m, nil
}

// Daily life questions

func (s *MemStorage) AllDailyLifeQuestions(_ context.Context) ([]models.DailyLifeQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DailyLifeQuestion, 0, len(s.dailyLifeQuestions))
	for _, q := range s.dailyLifeQuestions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) DailyLifeQuestionsBySubject(_ context.Context, subjectID int) ([]models.DailyLifeQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DailyLifeQuestion
	for _, q := range s.dailyLifeQuestions {
		if q.SubjectID == subjectID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) CreateDailyLifeQuestion(_ context.Context, in models.InsertDailyLifeQuestion) (*models.DailyLifeQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := models.DailyLifeQuestion{
		ID:                  s.allocID(),
		Question:            in.Question,
		Answer:              in.Answer,
		SubjectID:           in.SubjectID,
		RealWorldConnection: in.RealWorldConnection,
	}
	s.dailyLifeQuestions[q.ID] = q
	return &q, nil
}

// Chat messages

func (s *MemStorage) CreateChatMessage(_ context.Context, in models.InsertChatMessage) (*models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.ChatMessage{
		ID:        s.allocID(),
		UserID:    in.UserID,
		Message:   in.Message,
		Response:  in.Response,
		Context:   in.Context,
		CreatedAt: timeOr(in.CreatedAt, time.Now()),
	}
	s.chatMessages[m.ID] = m
	return &m, nil
}

func (s *MemStorage) ChatMessagesByUser(_ context.Context, userID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultChatLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ChatMessage
	for _, m := range s.chatMessages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
