package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"studybuddy/internal/auth"
	"studybuddy/internal/models"
)

func (h *Handler) Register(c *gin.Context) {
	var in models.InsertUser
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(in); err != nil {
		failValidation(c, err)
		return
	}

	existing, err := h.store.GetUserByUsername(c.Request.Context(), in.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if existing != nil {
		fail(c, http.StatusConflict, "Username already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	in.Password = string(hash)

	user, err := h.store.CreateUser(c.Request.Context(), in)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	h.publish("user.created", user)
	c.JSON(http.StatusOK, user)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failValidation(c, err)
		return
	}

	user, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetInt(auth.ContextUserID)
	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if user == nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
