package handlers

import (
	"net/http"

	"dogspot/middleware"
	"dogspot/models"
	requestService "dogspot/services/request"
	userService "dogspot/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestHandler serves the posting flow for service requests.
type RequestHandler struct {
	RequestService requestService.RequestService
	UserService    userService.UserService
}

// CreateRequestHandler handles POST /api/requests. The client snapshot is
// taken from the authenticated account at posting time.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in requestService.CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid create request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.UserService.GetByID(cu.ID)
	if err != nil {
		logger.Error("Client lookup failed", zap.String("id", cu.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
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
	}

	req, err := h.RequestService.Create(client, in)
	if err != nil {
		logger.Error("Failed to create request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetRequestByIDHandler handles GET /api/requests/:id.
func (h *RequestHandler) GetRequestByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	req, err := h.RequestService.GetByID(id)
	if err != nil {
		logger.Error("Request not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListMyRequestsHandler handles GET /api/requests/mine.
func (h *RequestHandler) ListMyRequestsHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	requests, err := h.RequestService.ListByClient(cu.ID)
	if err != nil {
		logger.Error("Failed to list client requests", zap.String("clientID", cu.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

// CompleteRequestHandler handles PUT /api/requests/:id/complete.
func (h *RequestHandler) CompleteRequestHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id := c.Param("id")
	req, err := h.RequestService.Complete(id, cu.ID)
	if err != nil {
		logger.Error("Failed to complete request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// DeleteRequestHandler handles DELETE /api/requests/:id. Only the owning
// client may delete a request.
func (h *RequestHandler) DeleteRequestHandler(c *gin.Context) {
	logger := getLogger(c)
	cu := middleware.CurrentUserFrom(c)
	if cu == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id := c.Param("id")
	if err := h.RequestService.Delete(id, cu.ID); err != nil {
		logger.Error("Failed to delete request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
