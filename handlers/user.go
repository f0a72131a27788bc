package handlers

import (
	"net/http"
	"strings"

	"dogspot/middleware"
	"dogspot/models"
	requestService "dogspot/services/request"
	userService "dogspot/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	UserService    userService.UserService
	RequestService requestService.RequestService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)
	var in userService.RegisterUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid user registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.UserService.Register(in)
	if err != nil {
		logger.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)
	var payload struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.UserService.Authenticate(payload.Email, payload.Password)
	if err != nil {
		logger.Error("Authentication failed", zap.String("email", payload.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCurrentUserHandler handles GET /api/users/me.
func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	usr, err := h.UserService.GetByID(cu.ID)
	if err != nil {
		logger.Error("User not found", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/users/me. After the account is saved
// the client and dog snapshots embedded in the user's open requests are
// rewritten to match.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var payload struct {
		Name         string       `json:"name"`
		Phone        string       `json:"phone"`
		Neighborhood string       `json:"neighborhood"`
		ProfileImage string       `json:"profileImage"`
		Dogs         []models.Dog `json:"dogs"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.UserService.GetByID(cu.ID)
	if err != nil {
		logger.Error("User not found", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if payload.Name != "" {
		usr.Name = payload.Name
	}
	if payload.Phone != "" {
		usr.Phone = payload.Phone
	}
	if payload.Neighborhood != "" {
		usr.Neighborhood = payload.Neighborhood
	}
	if payload.ProfileImage != "" {
		usr.ProfileImage = payload.ProfileImage
	}
	if err := h.UserService.Update(usr); err != nil {
		logger.Error("Failed to update user", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		ID:           usr.ID,
		Name:         usr.Name,
		Email:        usr.Email,
		Phone:        usr.Phone,
		ProfileImage: usr.ProfileImage,
		UserType:     usr.UserType,
		Neighborhood: usr.Neighborhood,
		CreatedAt:    usr.CreatedAt,
		Dogs:         payload.Dogs,
	}
	if err := h.RequestService.SyncClientProfile(client); err != nil {
		logger.Error("Failed to sync request snapshots", zap.String("id", cu.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, usr)
}

// SignOutUserHandler handles POST /api/users/signout.
func (h *UserHandler) SignOutUserHandler(c *gin.Context) {
	logger := getLogger(c)
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Authorization header"})
		return
	}
	if err := h.UserService.SignOut(token); err != nil {
		logger.Error("Failed to sign out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
