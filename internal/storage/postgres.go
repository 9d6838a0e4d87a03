package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"studybuddy/internal/models"
)

// PostgresStorage backs the same contract with relational tables. Each table
// has its own SERIAL sequence, so ids are dense per table instead of shared
// like MemStorage — callers must not assume either numbering.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(databaseURL string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	st := &PostgresStorage{db: db}
	if err := st.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			grade INTEGER NOT NULL DEFAULT 6,
			streak INTEGER NOT NULL DEFAULT 0,
			total_quizzes INTEGER NOT NULL DEFAULT 0,
			average_score INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS subjects (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT NOT NULL,
			color TEXT NOT NULL,
			total_chapters INTEGER NOT NULL,
			description TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			subject_id INTEGER NOT NULL,
			grade INTEGER NOT NULL,
			chapter TEXT NOT NULL,
			question TEXT NOT NULL,
			options JSONB,
			correct_answer TEXT NOT NULL,
			explanation TEXT,
			difficulty TEXT NOT NULL DEFAULT 'medium',
			type TEXT NOT NULL DEFAULT 'mcq'
		);
		CREATE TABLE IF NOT EXISTS quizzes (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			subject_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			time_spent INTEGER NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS doubts (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			subject_id INTEGER NOT NULL,
			question TEXT NOT NULL,
			answer TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS creative_tasks (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			prompt TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS thinking_challenges (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			type TEXT NOT NULL,
			hint TEXT,
			solution TEXT
		);
		CREATE TABLE IF NOT EXISTS myth_facts (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			statement TEXT NOT NULL,
			is_myth BOOLEAN NOT NULL,
			explanation TEXT NOT NULL,
			category TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS daily_life_questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			subject_id INTEGER NOT NULL,
			real_world_connection TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS chat_messages (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			message TEXT NOT NULL,
			response TEXT NOT NULL,
			context TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_questions_subject_grade ON questions(subject_id, grade);
		CREATE INDEX IF NOT EXISTS idx_quizzes_user ON quizzes(user_id);
		CREATE INDEX IF NOT EXISTS idx_doubts_user ON doubts(user_id);
		CREATE INDEX IF NOT EXISTS idx_chat_messages_user_time ON chat_messages(user_id, created_at);
	`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Users

const userCols = "id, username, password, grade, streak, total_quizzes, average_score"

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Grade, &u.Streak, &u.TotalQuizzes, &u.AverageScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userCols+` FROM users WHERE username = $1`, username))
}

func (s *PostgresStorage) CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, grade, streak, total_quizzes, average_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userCols,
		in.Username, in.Password, intOr(in.Grade, 6), intOr(in.Streak, 0),
		intOr(in.TotalQuizzes, 0), intOr(in.AverageScore, 0)))
}

func (s *PostgresStorage) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `
		UPDATE users SET
			username = COALESCE($2, username),
			password = COALESCE($3, password),
			grade = COALESCE($4, grade),
			streak = COALESCE($5, streak),
			total_quizzes = COALESCE($6, total_quizzes),
			average_score = COALESCE($7, average_score)
		WHERE id = $1
		RETURNING `+userCols,
		id, upd.Username, upd.Password, upd.Grade, upd.Streak, upd.TotalQuizzes, upd.AverageScore))
}

// Subjects

func (s *PostgresStorage) AllSubjects(ctx context.Context) ([]models.Subject, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon, color, total_chapters, description FROM subjects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Subject
	for rows.Next() {
		var sub models.Subject
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Icon, &sub.Color, &sub.TotalChapters, &sub.Description); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) GetSubject(ctx context.Context, id int) (*models.Subject, error) {
	var sub models.Subject
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, icon, color, total_chapters, description FROM subjects WHERE id = $1`, id).
		Scan(&sub.ID, &sub.Name, &sub.Icon, &sub.Color, &sub.TotalChapters, &sub.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *PostgresStorage) CreateSubject(ctx context.Context, in models.InsertSubject) (*models.Subject, error) {
	sub := models.Subject{
		Name:          in.Name,
		Icon:          in.Icon,
		Color:         in.Color,
		TotalChapters: in.TotalChapters,
		Description:   in.Description,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO subjects (name, icon, color, total_chapters, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Name, in.Icon, in.Color, in.TotalChapters, in.Description).Scan(&sub.ID)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Questions

const questionCols = "id, subject_id, grade, chapter, question, options, correct_answer, explanation, difficulty, type"

func scanQuestionRow(scan func(dest ...any) error) (models.Question, error) {
	var q models.Question
	var options []byte
	err := scan(&q.ID, &q.SubjectID, &q.Grade, &q.Chapter, &q.Question, &options,
		&q.CorrectAnswer, &q.Explanation, &q.Difficulty, &q.Type)
	if err != nil {
		return models.Question{}, err
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return models.Question{}, fmt.Errorf("decode question options: %w", err)
		}
	}
	return q, nil
}

func (s *PostgresStorage) queryQuestions(ctx context.Context, query string, args ...any) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Question
	for rows.Next() {
		q, err := scanQuestionRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) QuestionsBySubjectAndGrade(ctx context.Context, subjectID, grade, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = defaultQuestionLimit
	}
	return s.queryQuestions(ctx,
		`SELECT `+questionCols+` FROM questions WHERE subject_id = $1 AND grade = $2 ORDER BY id LIMIT $3`,
		subjectID, grade, limit)
}

func (s *PostgresStorage) QuestionsByChapter(ctx context.Context, subjectID, grade int, chapter string) ([]models.Question, error) {
	return s.queryQuestions(ctx,
		`SELECT `+questionCols+` FROM questions WHERE subject_id = $1 AND grade = $2 AND chapter = $3 ORDER BY id`,
		subjectID, grade, chapter)
}

func (s *PostgresStorage) CreateQuestion(ctx context.Context, in models.InsertQuestion) (*models.Question, error) {
	var options any
	if in.Options != nil {
		encoded, err := json.Marshal(in.Options)
		if err != nil {
			return nil, fmt.Errorf("encode question options: %w", err)
		}
		options = encoded
	}
	q, err := scanQuestionRow(s.db.QueryRowContext(ctx, `
		INSERT INTO questions (subject_id, grade, chapter, question, options, correct_answer, explanation, difficulty, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+questionCols,
		in.SubjectID, in.Grade, in.Chapter, in.Question, options,
		in.CorrectAnswer, in.Explanation, strOr(in.Difficulty, "medium"), strOr(in.Type, "mcq")).Scan)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Quizzes

const quizCols = "id, user_id, subject_id, score, total_questions, time_spent, completed, created_at"

func scanQuiz(row *sql.Row) (*models.Quiz, error) {
	var q models.Quiz
	err := row.Scan(&q.ID, &q.UserID, &q.SubjectID, &q.Score, &q.TotalQuestions, &q.TimeSpent, &q.Completed, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *PostgresStorage) CreateQuiz(ctx context.Context, in models.InsertQuiz) (*models.Quiz, error) {
	return scanQuiz(s.db.QueryRowContext(ctx, `
		INSERT INTO quizzes (user_id, subject_id, score, total_questions, time_spent, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+quizCols,
		in.UserID, in.SubjectID, in.Score, in.TotalQuestions, in.TimeSpent,
		boolOr(in.Completed, false), timeOr(in.CreatedAt, time.Now())))
}

func (s *PostgresStorage) QuizzesByUser(ctx context.Context, userID int) ([]models.Quiz, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+quizCols+` FROM quizzes WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Quiz
	for rows.Next() {
		var q models.Quiz
		if err := rows.Scan(&q.ID, &q.UserID, &q.SubjectID, &q.Score, &q.TotalQuestions, &q.TimeSpent, &q.Completed, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) UpdateQuiz(ctx context.Context, id int, upd models.QuizUpdate) (*models.Quiz, error) {
	return scanQuiz(s.db.QueryRowContext(ctx, `
		UPDATE quizzes SET
			score = COALESCE($2, score),
			total_questions = COALESCE($3, total_questions),
			time_spent = COALESCE($4, time_spent),
			completed = COALESCE($5, completed)
		WHERE id = $1
		RETURNING `+quizCols,
		id, upd.Score, upd.TotalQuestions, upd.TimeSpent, upd.Completed))
}

// Doubts

const doubtCols = "id, user_id, subject_id, question, answer, status, created_at"

func scanDoubt(row *sql.Row) (*models.Doubt, error) {
	var d models.Doubt
	err := row.Scan(&d.ID, &d.UserID, &d.SubjectID, &d.Question, &d.Answer, &d.Status, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *PostgresStorage) CreateDoubt(ctx context.Context, in models.InsertDoubt) (*models.Doubt, error) {
	return scanDoubt(s.db.QueryRowContext(ctx, `
		INSERT INTO doubts (user_id, subject_id, question, answer, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+doubtCols,
		in.UserID, in.SubjectID, in.Question, in.Answer, strOr(in.Status, "pending")))
}

func (s *PostgresStorage) DoubtsByUser(ctx context.Context, userID int) ([]models.Doubt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+doubtCols+` FROM doubts WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Doubt
	for rows.Next() {
		var d models.Doubt
		if err := rows.Scan(&d.ID, &d.UserID, &d.SubjectID, &d.Question, &d.Answer, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) UpdateDoubt(ctx context.Context, id int, upd models.DoubtUpdate) (*models.Doubt, error) {
	return scanDoubt(s.db.QueryRowContext(ctx, `
		UPDATE doubts SET
			question = COALESCE($2, question),
			answer = COALESCE($3, answer),
			status = COALESCE($4, status)
		WHERE id = $1
		RETURNING `+doubtCols,
		id, upd.Question, upd.Answer, upd.Status))
}

// Creative tasks

func (s *PostgresStorage) queryCreativeTasks(ctx context.Context, query string, args ...any) ([]models.CreativeTask, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.CreativeTask
	for rows.Next() {
		var t models.CreativeTask
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &t.Difficulty, &t.Prompt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) AllCreativeTasks(ctx context.Context) ([]models.CreativeTask, error) {
	return s.queryCreativeTasks(ctx,
		`SELECT id, title, description, category, difficulty, prompt FROM creative_tasks ORDER BY id`)
}

func (s *PostgresStorage) CreativeTasksByCategory(ctx context.Context, category string) ([]models.CreativeTask, error) {
	return s.queryCreativeTasks(ctx,
		`SELECT id, title, description, category, difficulty, prompt FROM creative_tasks WHERE category = $1 ORDER BY id`,
		category)
}

func (s *PostgresStorage) CreateCreativeTask(ctx context.Context, in models.InsertCreativeTask) (*models.CreativeTask, error) {
	t := models.CreativeTask{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		Prompt:      in.Prompt,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO creative_tasks (title, description, category, difficulty, prompt)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Title, in.Description, in.Category, in.Difficulty, in.Prompt).Scan(&t.ID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Thinking challenges

func (s *PostgresStorage) queryThinkingChallenges(ctx context.Context, query string, args ...any) ([]models.ThinkingChallenge, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ThinkingChallenge
	for rows.Next() {
		var c models.ThinkingChallenge
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Type, &c.Hint, &c.Solution); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) AllThinkingChallenges(ctx context.Context) ([]models.ThinkingChallenge, error) {
	return s.queryThinkingChallenges(ctx,
		`SELECT id, title, description, type, hint, solution FROM thinking_challenges ORDER BY id`)
}

func (s *PostgresStorage) ThinkingChallengesByType(ctx context.Context, challengeType string) ([]models.ThinkingChallenge, error) {
	return s.queryThinkingChallenges(ctx,
		`SELECT id, title, description, type, hint, solution FROM thinking_challenges WHERE type = $1 ORDER BY id`,
		challengeType)
}

func (s *PostgresStorage) CreateThinkingChallenge(ctx context.Context, in models.InsertThinkingChallenge) (*models.ThinkingChallenge, error) {
	c := models.ThinkingChallenge{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Hint:        in.Hint,
		Solution:    in.Solution,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO thinking_challenges (title, description, type, hint, solution)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Title, in.Description, in.Type, in.Hint, in.Solution).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Myth facts

func (s *PostgresStorage) AllMythFacts(ctx context.Context) ([]models.MythFact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, statement, is_myth, explanation, category FROM myth_facts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.MythFact
	for rows.Next() {
		var m models.MythFact
		if err := rows.Scan(&m.ID, &m.Title, &m.Statement, &m.IsMyth, &m.Explanation, &m.Category); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) CreateMythFact(ctx context.Context, in models.InsertMythFact) (*models.MythFact, error) {
	m := models.MythFact{
		Title:       in.Title,
		Statement:   in.Statement,
		IsMyth:      in.IsMyth,
		Explanation: in.Explanation,
		Category:    in.Category,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO myth_facts (title, statement, is_myth, explanation, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Title, in.Statement, in.IsMyth, in.Explanation, in.Category).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Daily life questions

func (s *PostgresStorage) queryDailyLifeQuestions(ctx context.Context, query string, args ...any) ([]models.DailyLifeQuestion, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.DailyLifeQuestion
	for rows.Next() {
		var q models.DailyLifeQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.SubjectID, &q.RealWorldConnection); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) AllDailyLifeQuestions(ctx context.Context) ([]models.DailyLifeQuestion, error) {
	return s.queryDailyLifeQuestions(ctx,
		`SELECT id, question, answer, subject_id, real_world_connection FROM daily_life_questions ORDER BY id`)
}

func (s *PostgresStorage) DailyLifeQuestionsBySubject(ctx context.Context, subjectID int) ([]models.DailyLifeQuestion, error) {
	return s.queryDailyLifeQuestions(ctx,
		`SELECT id, question, answer, subject_id, real_world_connection FROM daily_life_questions WHERE subject_id = $1 ORDER BY id`,
		subjectID)
}

func (s *PostgresStorage) CreateDailyLifeQuestion(ctx context.Context, in models.InsertDailyLifeQuestion) (*models.DailyLifeQuestion, error) {
	q := models.DailyLifeQuestion{
		Question:            in.Question,
		Answer:              in.Answer,
		SubjectID:           in.SubjectID,
		RealWorldConnection: in.RealWorldConnection,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO daily_life_questions (question, answer, subject_id, real_world_connection)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		in.Question, in.Answer, in.SubjectID, in.RealWorldConnection).Scan(&q.ID)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Chat messages

func (s *PostgresStorage) CreateChatMessage(ctx context.Context, in models.InsertChatMessage) (*models.ChatMessage, error) {
	var m models.ChatMessage
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO chat_messages (user_id, message, response, context, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, message, response, context, created_at`,
		in.UserID, in.Message, in.Response, in.Context, timeOr(in.CreatedAt, time.Now())).
		Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Context, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PostgresStorage) ChatMessagesByUser(ctx context.Context, userID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultChatLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message, response, context, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Context, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
