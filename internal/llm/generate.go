package llm

import "context"

// Generated payload shapes. Each Generate method declares the JSON shape it
// expects and treats missing required fields as a failure, not a partial
// success.

type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type GeneratedCreativeTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Difficulty  string `json:"difficulty"`
}

type GeneratedChallenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Hint        string `json:"hint"`
	Solution    string `json:"solution"`
}

type GeneratedMythFact struct {
	Title       string `json:"title"`
	Statement   string `json:"statement"`
	IsMyth      bool   `json:"isMyth"`
	Explanation string `json:"explanation"`
	Category    string `json:"category"`
}

type GeneratedDailyLife struct {
	Question            string `json:"question"`
	Answer              string `json:"answer"`
	RealWorldConnection string `json:"realWorldConnection"`
}

// ChatReply answers a student message in the study-buddy persona.
func (c *Client) ChatReply(ctx context.Context, message, chatContext string) (string, error) {
	return c.Complete(ctx, chatSystemPrompt(chatContext), message, 500)
}

// AnswerDoubt produces a teacher-style answer to a subject doubt.
func (c *Client) AnswerDoubt(ctx context.Context, question, subject string, grade int) (string, error) {
	return c.Complete(ctx, "", doubtPrompt(question, subject, grade), 800)
}

func (c *Client) GenerateQuizQuestions(ctx context.Context, subject string, grade int, chapter string, count int) ([]GeneratedQuestion, error) {
	var batch struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := c.CompleteJSON(ctx, quizPrompt(subject, grade, chapter, count), &batch); err != nil {
		return nil, err
	}
	if len(batch.Questions) == 0 {
		return nil, failed("no questions in response", nil)
	}
	for _, q := range batch.Questions {
		if q.Question == "" || q.CorrectAnswer == "" {
			return nil, failed("question batch is missing required fields", nil)
		}
	}
	return batch.Questions, nil
}

func (c *Client) GenerateCreativeTask(ctx context.Context, category string) (GeneratedCreativeTask, error) {
	var task GeneratedCreativeTask
	if err := c.CompleteJSON(ctx, creativeTaskPrompt(category), &task); err != nil {
		return GeneratedCreativeTask{}, err
	}
	if task.Title == "" || task.Description == "" || task.Prompt == "" {
		return GeneratedCreativeTask{}, failed("creative task is missing required fields", nil)
	}
	if task.Difficulty == "" {
		task.Difficulty = "medium"
	}
	return task, nil
}

func (c *Client) GenerateThinkingChallenge(ctx context.Context, challengeType string) (GeneratedChallenge, error) {
	var challenge GeneratedChallenge
	if err := c.CompleteJSON(ctx, thinkingChallengePrompt(challengeType), &challenge); err != nil {
		return GeneratedChallenge{}, err
	}
	if challenge.Title == "" || challenge.Description == "" {
		return GeneratedChallenge{}, failed("thinking challenge is missing required fields", nil)
	}
	return challenge, nil
}

func (c *Client) GenerateMythFact(ctx context.Context) (GeneratedMythFact, error) {
	var fact GeneratedMythFact
	if err := c.CompleteJSON(ctx, mythFactPrompt(), &fact); err != nil {
		return GeneratedMythFact{}, err
	}
	if fact.Title == "" || fact.Statement == "" || fact.Explanation == "" {
		return GeneratedMythFact{}, failed("myth fact is missing required fields", nil)
	}
	if fact.Category == "" {
		fact.Category = "general"
	}
	return fact, nil
}

func (c *Client) GenerateDailyLifeQuestion(ctx context.Context, subject string) (GeneratedDailyLife, error) {
	var question GeneratedDailyLife
	if err := c.CompleteJSON(ctx, dailyLifePrompt(subject), &question); err != nil {
		return GeneratedDailyLife{}, err
	}
	if question.Question == "" || question.Answer == "" {
		return GeneratedDailyLife{}, failed("daily life question is missing required fields", nil)
	}
	return question, nil
}
