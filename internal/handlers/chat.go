package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/models"
)

type chatRequest struct {
	Message string  `json:"message" validate:"required"`
	UserID  int     `json:"userId"`
	Context *string `json:"context"`
}

// Chat generates a reply, stores the message/response pair and returns only
// the reply text. A missing userId falls back to the demo user.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failValidation(c, err)
		return
	}
	if req.UserID == 0 {
		req.UserID = 1
	}

	chatContext := ""
	if req.Context != nil {
		chatContext = *req.Context
	}
	reply, err := h.llm.ChatReply(c.Request.Context(), req.Message, chatContext)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate reply")
		return
	}

	message, err := h.store.CreateChatMessage(c.Request.Context(), models.InsertChatMessage{
		UserID:   req.UserID,
		Message:  req.Message,
		Response: reply,
		Context:  req.Context,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save chat message")
		return
	}

	h.publish("chat.message", message)
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *Handler) ChatHistory(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	limit := queryInt(c, "limit", 0)

	messages, err := h.store.ChatMessagesByUser(c.Request.Context(), userID, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}
	c.JSON(http.StatusOK, messages)
}
