package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/auth"
	"studybuddy/internal/event"
	"studybuddy/internal/llm"
	"studybuddy/internal/models"
	"studybuddy/internal/storage"
)

// Handler wires every route to the store, the generation client and the
// optional event publisher. One instance serves the whole API.
type Handler struct {
	store     storage.Storage
	llm       *llm.Client
	events    *event.Publisher
	jwtSecret string
}

func NewHandler(store storage.Storage, client *llm.Client, events *event.Publisher, jwtSecret string) *Handler {
	return &Handler{store: store, llm: client, events: events, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/users", h.Register)
		api.POST("/login", h.Login)
		api.GET("/users/:id", h.GetUser)
		api.GET("/profile", auth.Middleware(h.jwtSecret), h.Profile)

		api.GET("/subjects", h.ListSubjects)
		api.GET("/questions/:subjectId/:grade", h.ListQuestions)
		api.POST("/generate-quiz", h.GenerateQuiz)
		api.POST("/quiz/submit", h.SubmitQuiz)

		api.POST("/chat", h.Chat)
		api.GET("/chat/:userId", h.ChatHistory)

		api.POST("/doubts", h.SubmitDoubt)
		api.GET("/doubts/:userId", h.ListDoubts)

		api.GET("/creative-tasks", h.ListCreativeTasks)
		api.POST("/generate-creative-task", h.GenerateCreativeTask)

		api.GET("/thinking-challenges", h.ListThinkingChallenges)
		api.POST("/generate-thinking-challenge", h.GenerateThinkingChallenge)

		api.GET("/myth-facts", h.ListMythFacts)
		api.POST("/generate-myth-fact", h.GenerateMythFact)

		api.GET("/daily-life-questions", h.ListDailyLifeQuestions)
		api.POST("/generate-daily-life-question", h.GenerateDailyLifeQuestion)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "studybuddy"})
}

// fail writes the uniform error body.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// failValidation maps a *ValidationError to a 400 listing every violated
// field; anything else in err means the body did not decode at all.
func failValidation(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
		return
	}
	fail(c, http.StatusBadRequest, "Invalid request body")
}

func pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return value, true
}

// queryInt returns fallback when the parameter is absent or not a number.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (h *Handler) publish(eventType string, payload any) {
	// Best-effort; Publish logs its own failures and a nil publisher is a
	// no-op.
	_ = h.events.Publish(eventType, payload)
}
