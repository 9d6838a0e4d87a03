package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/models"
)

func (h *Handler) ListCreativeTasks(c *gin.Context) {
	var tasks []models.CreativeTask
	var err error
	if category := c.Query("category"); category != "" {
		tasks, err = h.store.CreativeTasksByCategory(c.Request.Context(), category)
	} else {
		tasks, err = h.store.AllCreativeTasks(c.Request.Context())
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch creative tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type generateCreativeTaskRequest struct {
	Category string `json:"category" validate:"required"`
}

func (h *Handler) GenerateCreativeTask(c *gin.Context) {
	var req generateCreativeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failValidation(c, err)
		return
	}

	generated, err := h.llm.GenerateCreativeTask(c.Request.Context(), req.Category)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate creative task")
		return
	}

	task, err := h.store.CreateCreativeTask(c.Request.Context(), models.InsertCreativeTask{
		Title:       generated.Title,
		Description: generated.Description,
		Category:    req.Category,
		Difficulty:  generated.Difficulty,
		Prompt:      generated.Prompt,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save creative task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) ListThinkingChallenges(c *gin.Context) {
	var challenges []models.ThinkingChallenge
	var err error
	if challengeType := c.Query("type"); challengeType != "" {
		challenges, err = h.store.ThinkingChallengesByType(c.Request.Context(), challengeType)
	} else {
		challenges, err = h.store.AllThinkingChallenges(c.Request.Context())
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch thinking challenges")
		return
	}
	c.JSON(http.StatusOK, challenges)
}

type generateThinkingChallengeRequest struct {
	Type string `json:"type" validate:"required"`
}

func (h *Handler) GenerateThinkingChallenge(c *gin.Context) {
	var req generateThinkingChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failValidation(c, err)
		return
	}

	generated, err := h.llm.GenerateThinkingChallenge(c.Request.Context(), req.Type)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate thinking challenge")
		return
	}

	insert := models.InsertThinkingChallenge{
		Title:       generated.Title,
		Description: generated.Description,
		Type:        req.Type,
	}
	if generated.Hint != "" {
		insert.Hint = &generated.Hint
	}
	if generated.Solution != "" {
		insert.Solution = &generated.Solution
	}
	challenge, err := h.store.CreateThinkingChallenge(c.Request.Context(), insert)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save thinking challenge")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

func (h *Handler) ListMythFacts(c *gin.Context) {
	facts, err := h.store.AllMythFacts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch myth facts")
		return
	}
	c.JSON(http.StatusOK, facts)
}

func (h *Handler) GenerateMythFact(c *gin.Context) {
	generated, err := h.llm.GenerateMythFact(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate myth fact")
		return
	}

	fact, err := h.store.CreateMythFact(c.Request.Context(), models.InsertMythFact{
		Title:       generated.Title,
		Statement:   generated.Statement,
		IsMyth:      generated.IsMyth,
		Explanation: generated.Explanation,
		Category:    generated.Category,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save myth fact")
		return
	}
	c.JSON(http.StatusOK, fact)
}

func (h *Handler) ListDailyLifeQuestions(c *gin.Context) {
	var questions []models.DailyLifeQuestion
	var err error
	if subjectID := queryInt(c, "subjectId", 0); subjectID > 0 {
		questions, err = h.store.DailyLifeQuestionsBySubject(c.Request.Context(), subjectID)
	} else {
		questions, err = h.store.AllDailyLifeQuestions(c.Request.Context())
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch daily life questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

type generateDailyLifeRequest struct {
	Subject   string `json:"subject"`
	SubjectID int    `json:"subjectId" validate:"required,min=1"`
}

func (h *Handler) GenerateDailyLifeQuestion(c *gin.Context) {
	var req generateDailyLifeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failValidation(c, err)
		return
	}

	subject, err := h.store.GetSubject(c.Request.Context(), req.SubjectID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate daily life question")
		return
	}
	if subject == nil {
		fail(c, http.StatusNotFound, "Subject not found")
		return
	}
	subjectName := req.Subject
	if subjectName == "" {
		subjectName = subject.Name
	}

	generated, err := h.llm.GenerateDailyLifeQuestion(c.Request.Context(), subjectName)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate daily life question")
		return
	}

	question, err := h.store.CreateDailyLifeQuestion(c.Request.Context(), models.InsertDailyLifeQuestion{
		Question:            generated.Question,
		Answer:              generated.Answer,
		SubjectID:           subject.ID,
		RealWorldConnection: generated.RealWorldConnection,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save daily life question")
		return
	}
	c.JSON(http.StatusOK, question)
}
