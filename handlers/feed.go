package handlers

import (
	"net/http"

	"dogspot/middleware"
	"dogspot/models"
	"dogspot/services/catalog"
	"dogspot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the three browse feeds and the shared filter state.
// Requests that carry their own query parameters are filtered ad hoc;
// bare requests fall back to the State snapshot, so saved filters drive
// the default feeds.
type FeedHandler struct {
	Service catalog.FeedService
	State   *catalog.State
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(service catalog.FeedService, state *catalog.State) *FeedHandler {
	return &FeedHandler{Service: service, State: state}
}

// feedInputs resolves the query string and filter options for one feed
// request: explicit parameters win, the shared snapshot fills in for a
// bare request.
func (h *FeedHandler) feedInputs(c *gin.Context) (string, models.FilterOptions, error) {
	if h.State != nil && c.Request.URL.RawQuery == "" {
		snap := h.State.Snapshot()
		return snap.Query, snap.Filters, nil
	}
	filters, err := parseFilterOptions(c)
	return c.Query("q"), filters, err
}

// ListRequestsHandler returns the filtered, sorted requests feed. The
// caller's own requests come first when the request is authenticated.
func (h *FeedHandler) ListRequestsHandler(c *gin.Context) {
	logger := getLogger(c)
	query, filters, err := h.feedInputs(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter parameters", err.Error())
		return
	}

	currentUserID := ""
	if cu := middleware.CurrentUserFrom(c); cu != nil {
		currentUserID = cu.ID
	}

	requests, err := h.Service.Requests(c.Request.Context(), query, filters, currentUserID)
	if err != nil {
		logger.Error("Failed to load requests feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

// ListSittersHandler returns the filtered, sorted sitters feed.
func (h *FeedHandler) ListSittersHandler(c *gin.Context) {
	logger := getLogger(c)
	query, filters, err := h.feedInputs(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter parameters", err.Error())
		return
	}

	sitters, err := h.Service.Sitters(c.Request.Context(), query, filters, middleware.CurrentUserFrom(c))
	if err != nil {
		logger.Error("Failed to load sitters feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sitters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sitters": sitters, "count": len(sitters)})
}

// ListBusinessesHandler returns the filtered, sorted businesses feed. The
// businesses tab has its own free-standing category selector and sort.
func (h *FeedHandler) ListBusinessesHandler(c *gin.Context) {
	logger := getLogger(c)
	query, filters, err := h.feedInputs(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter parameters", err.Error())
		return
	}

	category, sortBy := c.Query("category"), c.Query("sort_by")
	if h.State != nil && c.Request.URL.RawQuery == "" {
		snap := h.State.Snapshot()
		category, sortBy = snap.SelectedCategory, snap.BusinessSort
	}

	businesses, err := h.Service.Businesses(c.Request.Context(), query, filters, category, sortBy)
	if err != nil {
		logger.Error("Failed to load businesses feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses, "count": len(businesses)})
}

// filterStatePayload carries a partial update of the shared filter state.
// Absent fields are left untouched.
type filterStatePayload struct {
	Query            *string               `json:"query"`
	Filters          *models.FilterOptions `json:"filters"`
	SelectedCategory *string               `json:"selectedCategory"`
	BusinessSort     *string               `json:"businessSort"`
}

// GetFilterStateHandler handles GET /api/feed/filters.
func (h *FeedHandler) GetFilterStateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":  h.State.Snapshot(),
		"active": h.State.HasActiveFilters(),
	})
}

// UpdateFilterStateHandler handles PUT /api/feed/filters. Each mutation
// publishes to the state's subscribers.
func (h *FeedHandler) UpdateFilterStateHandler(c *gin.Context) {
	logger := getLogger(c)
	var payload filterStatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid filter state payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter state payload", err.Error())
		return
	}

	if payload.Query != nil {
		h.State.SetQuery(*payload.Query)
	}
	if payload.Filters != nil {
		h.State.SetFilters(*payload.Filters)
	}
	if payload.SelectedCategory != nil {
		h.State.SetSelectedCategory(*payload.SelectedCategory)
	}
	if payload.BusinessSort != nil {
		h.State.SetBusinessSort(*payload.BusinessSort)
	}
	c.JSON(http.StatusOK, gin.H{
		"state":  h.State.Snapshot(),
		"active": h.State.HasActiveFilters(),
	})
}

// RemoveFilterChipHandler handles DELETE /api/feed/filters/:kind. The
// optional value query parameter selects the entry of a multi-select
// filter to drop.
func (h *FeedHandler) RemoveFilterChipHandler(c *gin.Context) {
	h.State.RemoveFilter(c.Param("kind"), c.Query("value"))
	c.JSON(http.StatusOK, gin.H{
		"state":  h.State.Snapshot(),
		"active": h.State.HasActiveFilters(),
	})
}

// ClearFilterStateHandler handles DELETE /api/feed/filters.
func (h *FeedHandler) ClearFilterStateHandler(c *gin.Context) {
	h.State.ClearAll()
	c.JSON(http.StatusOK, gin.H{
		"state":  h.State.Snapshot(),
		"active": h.State.HasActiveFilters(),
	})
}
