package routes

import (
	"net/http"
	"time"

	"dogspot/handlers"
	"dogspot/middleware"
	"dogspot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers the three browse feeds. Authentication is
// optional here: a valid token only pins the caller's own entries.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.Use(middleware.OptionalAuthMiddleware())
		api.GET("/requests", hb.ListRequestsHandler)
		api.GET("/sitters", hb.ListSittersHandler)
		api.GET("/businesses", hb.ListBusinessesHandler)

		// Shared filter state behind the feeds.
		api.GET("/filters", hb.GetFilterStateHandler)
		api.PUT("/filters", hb.UpdateFilterStateHandler)
		api.DELETE("/filters", hb.ClearFilterStateHandler)
		api.DELETE("/filters/:kind", hb.RemoveFilterChipHandler)
	}
}

// RegisterRequestRoutes registers the posting flow endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.GET("/:id", hb.GetRequestByIDHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateRequestHandler)
		api.GET("/mine/list", hb.ListMyRequestsHandler)
		api.PUT("/:id/complete", hb.CompleteRequestHandler)
		api.DELETE("/:id", hb.DeleteRequestHandler)
	}
}

// RegisterSitterRoutes registers sitter profile endpoints.
func RegisterSitterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sitters")
	{
		api.POST("/register", hb.RegisterSitterHandler)
		api.GET("", hb.ListSittersByNeighborhoodHandler)
		api.GET("/:id", hb.GetSitterByIDHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/me", hb.UpdateSitterHandler)
		api.PUT("/availability", hb.UpdateSitterAvailabilityHandler)
	}
}

// RegisterBusinessRoutes registers business storefront endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.POST("/register", hb.RegisterBusinessHandler)
		api.GET("", hb.ListBusinessesByCategoryHandler)
		api.GET("/:id", hb.GetBusinessByIDHandler)
		api.GET("/:id/open", hb.GetBusinessOpenHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/:id/offer", hb.SetSpecialOfferHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetCurrentUserHandler)
		api.PUT("/me", hb.UpdateUserHandler)
		api.POST("/signout", hb.SignOutUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFeedRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterSitterRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
