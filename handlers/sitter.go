package handlers

import (
	"net/http"

	"dogspot/middleware"
	"dogspot/models"
	sitterService "dogspot/services/sitter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SitterHandler serves sitter profile endpoints.
type SitterHandler struct {
	SitterService sitterService.SitterService
}

// RegisterSitterHandler handles POST /api/sitters/register.
func (h *SitterHandler) RegisterSitterHandler(c *gin.Context) {
	logger := getLogger(c)
	var in sitterService.RegisterSitterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid sitter registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sitter, err := h.SitterService.Register(in)
	if err != nil {
		logger.Error("Failed to register sitter", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sitter)
}

// GetSitterByIDHandler handles GET /api/sitters/:id.
func (h *SitterHandler) GetSitterByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	sitter, err := h.SitterService.GetByID(id)
	if err != nil {
		logger.Error("Sitter not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sitter)
}

// UpdateSitterHandler handles PUT /api/sitters/me. Sitters may only edit
// their own profile; empty fields are left untouched.
func (h *SitterHandler) UpdateSitterHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil || cu.UserType != "sitter" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Sitter account required"})
		return
	}

	var payload struct {
		Name          string                 `json:"name"`
		Phone         string                 `json:"phone"`
		Description   string                 `json:"description"`
		Experience    string                 `json:"experience"`
		Neighborhoods []string               `json:"neighborhoods"`
		Services      []models.SitterService `json:"services"`
		ProfileImage  string                 `json:"profileImage"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid sitter profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sitter, err := h.SitterService.GetByID(cu.ID)
	if err != nil {
		logger.Error("Sitter not found", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if payload.Name != "" {
		sitter.Name = payload.Name
	}
	if payload.Phone != "" {
		sitter.Phone = payload.Phone
	}
	if payload.Description != "" {
		sitter.Description = payload.Description
	}
	if payload.Experience != "" {
		sitter.Experience = payload.Experience
	}
	if len(payload.Neighborhoods) > 0 {
		sitter.Neighborhoods = payload.Neighborhoods
	}
	if len(payload.Services) > 0 {
		sitter.Services = payload.Services
	}
	if payload.ProfileImage != "" {
		sitter.ProfileImage = payload.ProfileImage
	}

	if err := h.SitterService.Update(sitter); err != nil {
		logger.Error("Failed to update sitter", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sitter)
}

// UpdateSitterAvailabilityHandler handles PUT /api/sitters/availability.
// Sitters may only edit their own slots.
func (h *SitterHandler) UpdateSitterAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil || cu.UserType != "sitter" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Sitter account required"})
		return
	}

	var payload struct {
		Availability []models.Availability `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sitter, err := h.SitterService.UpdateAvailability(cu.ID, payload.Availability)
	if err != nil {
		logger.Error("Failed to update availability", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sitter)
}

// ListSittersByNeighborhoodHandler handles GET /api/sitters. The optional
// neighborhood query parameter narrows the directory to one area.
func (h *SitterHandler) ListSittersByNeighborhoodHandler(c *gin.Context) {
	logger := getLogger(c)
	sitters, err := h.SitterService.ListByNeighborhood(c.Query("neighborhood"))
	if err != nil {
		logger.Error("Failed to list sitters", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sitters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sitters": sitters, "count": len(sitters)})
}
