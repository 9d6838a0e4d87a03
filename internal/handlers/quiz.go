package handlers

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/models"
)

func (h *Handler) ListSubjects(c *gin.Context) {
	subjects, err := h.store.AllSubjects(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch subjects")
		return
	}
	c.JSON(http.StatusOK, subjects)
}

func (h *Handler) ListQuestions(c *gin.Context) {
	subjectID, ok := pathInt(c, "subjectId")
	if !ok {
		return
	}
	grade, ok := pathInt(c, "grade")
	if !ok {
		return
	}
	limit := queryInt(c, "limit", 0)

	questions, err := h.store.QuestionsBySubjectAndGrade(c.Request.Context(), subjectID, grade, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

type generateQuizRequest struct {
	Subject string `json:"subject" validate:"required"`
	Grade   int    `json:"grade" validate:"required,min=1"`
	Chapter string `json:"chapter" validate:"required"`
	Count   int    `json:"count" validate:"omitempty,min=1,max=20"`
}

// GenerateQuiz produces a question batch for a subject resolved by name,
// persists every question and returns the generated batch. Generation runs
// before any persist, so a provider failure leaves the store untouched.
func (h *Handler) GenerateQuiz(c *gin.Context) {
	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failValidation(c, err)
		return
	}
	if req.Count == 0 {
		req.Count = 5
	}

	subject, err := h.resolveSubjectByName(c, req.Subject)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate quiz")
		return
	}
	if subject == nil {
		fail(c, http.StatusNotFound, "Subject not found")
		return
	}

	generated, err := h.llm.GenerateQuizQuestions(c.Request.Context(), subject.Name, req.Grade, req.Chapter, req.Count)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate quiz")
		return
	}

	for _, q := range generated {
		insert := models.InsertQuestion{
			SubjectID:     subject.ID,
			Grade:         req.Grade,
			Chapter:       req.Chapter,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
		if q.Explanation != "" {
			insert.Explanation = &q.Explanation
		}
		if _, err := h.store.CreateQuestion(c.Request.Context(), insert); err != nil {
			fail(c, http.StatusInternalServerError, "Failed to save quiz questions")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"questions": generated})
}

func (h *Handler) resolveSubjectByName(c *gin.Context, name string) (*models.Subject, error) {
	subjects, err := h.store.AllSubjects(c.Request.Context())
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		if strings.EqualFold(subjects[i].Name, name) {
			return &subjects[i], nil
		}
	}
	return nil, nil
}

// SubmitQuiz persists the attempt and recomputes the owning user's
// totalQuizzes and averageScore from the full quiz history.
func (h *Handler) SubmitQuiz(c *gin.Context) {
	var in models.InsertQuiz
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(in); err != nil {
		failValidation(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), in.UserID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to submit quiz")
		return
	}
	if user == nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	quiz, err := h.store.CreateQuiz(c.Request.Context(), in)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to submit quiz")
		return
	}

	quizzes, err := h.store.QuizzesByUser(c.Request.Context(), in.UserID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to submit quiz")
		return
	}
	sum := 0
	for _, q := range quizzes {
		sum += q.Score
	}
	count := len(quizzes)
	average := int(math.Round(float64(sum) / float64(count)))

	if _, err := h.store.UpdateUser(c.Request.Context(), in.UserID, models.UserUpdate{
		TotalQuizzes: &count,
		AverageScore: &average,
	}); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to submit quiz")
		return
	}

	h.publish("quiz.submitted", quiz)
	c.JSON(http.StatusOK, quiz)
}
