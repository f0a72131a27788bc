package handlers

import (
	"net/http"
	"time"

	businessService "dogspot/services/business"
	"dogspot/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler serves business storefront endpoints.
type BusinessHandler struct {
	BusinessService businessService.BusinessService
}

// RegisterBusinessHandler handles POST /api/businesses/register.
func (h *BusinessHandler) RegisterBusinessHandler(c *gin.Context) {
	logger := getLogger(c)
	var in businessService.RegisterBusinessInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid business registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.BusinessService.Register(in)
	if err != nil {
		logger.Error("Failed to register business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, business)
}

// GetBusinessByIDHandler handles GET /api/businesses/:id.
func (h *BusinessHandler) GetBusinessByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	business, err := h.BusinessService.GetByID(id)
	if err != nil {
		logger.Error("Business not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, business)
}

// GetBusinessOpenHandler handles GET /api/businesses/:id/open. The answer
// depends on the clock so it is never cached.
func (h *BusinessHandler) GetBusinessOpenHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	business, err := h.BusinessService.GetByID(id)
	if err != nil {
		logger.Error("Business not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": business.ID, "open": catalog.OpenNow(*business, time.Now())})
}

// SetSpecialOfferHandler handles PUT /api/businesses/:id/offer.
func (h *BusinessHandler) SetSpecialOfferHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var payload struct {
		SpecialOffer string `json:"specialOffer"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid special offer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.BusinessService.SetSpecialOffer(id, payload.SpecialOffer)
	if err != nil {
		logger.Error("Failed to set special offer", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, business)
}

// ListBusinessesByCategoryHandler handles GET /api/businesses. The optional
// category query parameter narrows the listing to one of the fixed
// categories.
func (h *BusinessHandler) ListBusinessesByCategoryHandler(c *gin.Context) {
	logger := getLogger(c)
	businesses, err := h.BusinessService.ListByCategory(c.Query("category"))
	if err != nil {
		logger.Error("Failed to list businesses", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses, "count": len(businesses)})
}
