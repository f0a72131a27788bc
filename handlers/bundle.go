package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes can
// be registered from a single place.
type HandlerBundle struct {
	// Feed endpoints
	ListRequestsHandler      gin.HandlerFunc
	ListSittersHandler       gin.HandlerFunc
	ListBusinessesHandler    gin.HandlerFunc
	GetFilterStateHandler    gin.HandlerFunc
	UpdateFilterStateHandler gin.HandlerFunc
	RemoveFilterChipHandler  gin.HandlerFunc
	ClearFilterStateHandler  gin.HandlerFunc

	// Request endpoints
	CreateRequestHandler   gin.HandlerFunc
	GetRequestByIDHandler  gin.HandlerFunc
	ListMyRequestsHandler  gin.HandlerFunc
	CompleteRequestHandler gin.HandlerFunc
	DeleteRequestHandler   gin.HandlerFunc

	// Sitter endpoints
	RegisterSitterHandler            gin.HandlerFunc
	GetSitterByIDHandler             gin.HandlerFunc
	ListSittersByNeighborhoodHandler gin.HandlerFunc
	UpdateSitterHandler              gin.HandlerFunc
	UpdateSitterAvailabilityHandler  gin.HandlerFunc

	// Business endpoints
	RegisterBusinessHandler         gin.HandlerFunc
	GetBusinessByIDHandler          gin.HandlerFunc
	GetBusinessOpenHandler          gin.HandlerFunc
	ListBusinessesByCategoryHandler gin.HandlerFunc
	SetSpecialOfferHandler          gin.HandlerFunc

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetCurrentUserHandler   gin.HandlerFunc
	UpdateUserHandler       gin.HandlerFunc
	SignOutUserHandler      gin.HandlerFunc
}
