package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/models"
)

// SubmitDoubt answers a student doubt and persists it already marked
// answered. The subject must exist; an unknown user just falls back to the
// default grade for the prompt.
func (h *Handler) SubmitDoubt(c *gin.Context) {
	var in models.InsertDoubt
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(in); err != nil {
		failValidation(c, err)
		return
	}

	subject, err := h.store.GetSubject(c.Request.Context(), in.SubjectID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to submit doubt")
		return
	}
	if subject == nil {
		fail(c, http.StatusNotFound, "Subject not found")
		return
	}

	grade := 6
	if user, err := h.store.GetUser(c.Request.Context(), in.UserID); err == nil && user != nil {
		grade = user.Grade
	}

	answer, err := h.llm.AnswerDoubt(c.Request.Context(), in.Question, subject.Name, grade)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to answer doubt")
		return
	}

	status := "answered"
	in.Answer = &answer
	in.Status = &status
	doubt, err := h.store.CreateDoubt(c.Request.Context(), in)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save doubt")
		return
	}

	h.publish("doubt.answered", doubt)
	c.JSON(http.StatusOK, doubt)
}

func (h *Handler) ListDoubts(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	doubts, err := h.store.DoubtsByUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch doubts")
		return
	}
	c.JSON(http.StatusOK, doubts)
}
