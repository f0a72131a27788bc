package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dogspot/config"
	"dogspot/database"
	businessRepoPkg "dogspot/database/repository/business"
	requestRepoPkg "dogspot/database/repository/request"
	sitterRepoPkg "dogspot/database/repository/sitter"
	userRepoPkg "dogspot/database/repository/user"
	"dogspot/handlers"
	"dogspot/middleware"
	"dogspot/routes"
	"dogspot/services/business"
	"dogspot/services/catalog"
	"dogspot/services/request"
	"dogspot/services/sitter"
	"dogspot/services/user"
	"dogspot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	requestRepo := requestRepoPkg.NewMongoRequestRepo()
	sitterRepo := sitterRepoPkg.NewMongoSitterRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// The feed cache holds raw collection snapshots; entity services
	// invalidate it on writes. A zero TTL disables it.
	var feedCache catalog.FeedCache
	if ttl := config.AppConfig.FeedCacheTTL; ttl > 0 {
		feedCache = catalog.NewRedisFeedCache(utils.GetCacheClient(), time.Duration(ttl)*time.Second)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	requestService := &request.DefaultRequestService{
		Repo:  requestRepo,
		Cache: feedCache,
	}
	sitterService := &sitter.DefaultSitterService{
		Repo: sitterRepo,
	}
	if feedCache != nil {
		// Sitter writes publish through Subscribe; the snapshot cache is
		// one of the listeners.
		sitterService.Subscribe(func() {
			if err := feedCache.Invalidate(context.Background(), catalog.KindSitters); err != nil {
				logger.Warn("Failed to invalidate sitters feed cache", zap.Error(err))
			}
		})
	}
	businessService := &business.DefaultBusinessService{
		Repo:  businessRepo,
		Cache: feedCache,
	}
	feedService := &catalog.DefaultFeedService{
		RequestRepo:  requestRepo,
		SitterRepo:   sitterRepo,
		BusinessRepo: businessRepo,
		Cache:        feedCache,
	}

	// Shared filter state behind the feed endpoints. Bare feed reads fall
	// back to it, and every mutation publishes to its subscribers.
	filterState := catalog.NewState()
	filterState.Subscribe(func(snap catalog.Snapshot) {
		logger.Debug("Filter state changed",
			zap.String("query", snap.Query),
			zap.String("category", snap.SelectedCategory),
			zap.String("businessSort", snap.BusinessSort))
	})

	feedHandler := handlers.NewFeedHandler(feedService, filterState)
	requestHandler := &handlers.RequestHandler{
		RequestService: requestService,
		UserService:    userService,
	}
	sitterHandler := &handlers.SitterHandler{SitterService: sitterService}
	businessHandler := &handlers.BusinessHandler{BusinessService: businessService}
	userHandler := &handlers.UserHandler{
		UserService:    userService,
		RequestService: requestService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Feed endpoints.
		ListRequestsHandler:      feedHandler.ListRequestsHandler,
		ListSittersHandler:       feedHandler.ListSittersHandler,
		ListBusinessesHandler:    feedHandler.ListBusinessesHandler,
		GetFilterStateHandler:    feedHandler.GetFilterStateHandler,
		UpdateFilterStateHandler: feedHandler.UpdateFilterStateHandler,
		RemoveFilterChipHandler:  feedHandler.RemoveFilterChipHandler,
		ClearFilterStateHandler:  feedHandler.ClearFilterStateHandler,

		// Request endpoints.
		CreateRequestHandler:   requestHandler.CreateRequestHandler,
		GetRequestByIDHandler:  requestHandler.GetRequestByIDHandler,
		ListMyRequestsHandler:  requestHandler.ListMyRequestsHandler,
		CompleteRequestHandler: requestHandler.CompleteRequestHandler,
		DeleteRequestHandler:   requestHandler.DeleteRequestHandler,

		// Sitter endpoints.
		RegisterSitterHandler:            sitterHandler.RegisterSitterHandler,
		GetSitterByIDHandler:             sitterHandler.GetSitterByIDHandler,
		ListSittersByNeighborhoodHandler: sitterHandler.ListSittersByNeighborhoodHandler,
		UpdateSitterHandler:              sitterHandler.UpdateSitterHandler,
		UpdateSitterAvailabilityHandler:  sitterHandler.UpdateSitterAvailabilityHandler,

		// Business endpoints.
		RegisterBusinessHandler:         businessHandler.RegisterBusinessHandler,
		GetBusinessByIDHandler:          businessHandler.GetBusinessByIDHandler,
		GetBusinessOpenHandler:          businessHandler.GetBusinessOpenHandler,
		ListBusinessesByCategoryHandler: businessHandler.ListBusinessesByCategoryHandler,
		SetSpecialOfferHandler:          businessHandler.SetSpecialOfferHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetCurrentUserHandler:   userHandler.GetCurrentUserHandler,
		UpdateUserHandler:       userHandler.UpdateUserHandler,
		SignOutUserHandler:      userHandler.SignOutUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
