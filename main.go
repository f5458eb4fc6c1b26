// File: albarkah/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"albarkah/config"
	"albarkah/database"
	leadRepoPkg "albarkah/database/repository/lead"
	"albarkah/handlers"
	"albarkah/middleware"
	"albarkah/routes"
	"albarkah/services/auth"
	"albarkah/services/checkout"
	ai "albarkah/services/intelligence"
	leadSvcPkg "albarkah/services/lead"
	"albarkah/utils"
	"albarkah/worker"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	if err := leadRepo.LoadOrSeed(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed lead store: %v", err)
	}

	// Background summary refresher.
	summaryCache := ai.NewRedisSummaryCache(utils.GetCacheClient())
	enqueuer := worker.NewEnqueuer(summaryCache, logger)
	defer enqueuer.Close()

	// services.
	checkoutService := &checkout.DefaultSessionService{
		Repo:     leadRepo,
		Sessions: checkout.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Notifier: enqueuer,
		WANumber: config.AppConfig.AdminWANumber,
		Logger:   logger,
	}

	leadService := &leadSvcPkg.DefaultService{
		Repo:     leadRepo,
		Notifier: enqueuer,
		Logger:   logger,
	}

	authService := auth.NewDefaultAuthService(
		config.AppConfig.AdminUsername,
		config.AppConfig.AdminPasswordHash,
		utils.GetAuthCacheClient(),
		logger,
	)

	gemini, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	aiService := ai.NewDefaultService(gemini, ctxStore, leadRepo, summaryCache, logger)

	worker.InitSummaryWorker(aiService, logger)

	// handlers.
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	statusHandler := handlers.NewStatusHandler(leadService)
	adminHandler := handlers.NewAdminHandler(leadService, aiService)
	authHandler := handlers.NewAuthHandler(authService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,

		// Catalog endpoints.
		ListPackages: handlers.ListPackagesHandler,
		GetPackage:   handlers.GetPackageHandler,

		// Checkout endpoints.
		InitiateCheckout: checkoutHandler.InitiateSession,
		SubmitStep:       checkoutHandler.SubmitStep,
		StepBack:         checkoutHandler.StepBack,
		ConfirmBooking:   checkoutHandler.ConfirmBooking,

		// Status checker.
		CheckStatus: statusHandler.CheckStatus,

		// Auth endpoints.
		Login:  authHandler.Login,
		Logout: authHandler.Logout,

		// Admin endpoints.
		ListLeads:   adminHandler.ListLeads,
		GetLead:     adminHandler.GetLead,
		UpdateLead:  adminHandler.UpdateLead,
		DeleteLead:  adminHandler.DeleteLead,
		GetStats:    adminHandler.GetStats,
		ExportLeads: adminHandler.ExportLeads,
		GetSummary:  adminHandler.GetSummary,

		// AI endpoints.
		Chat:          aiHandler.Chat,
		ResetChat:     aiHandler.ResetChat,
		MarketingCopy: aiHandler.MarketingCopy,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Watch dependency health in the background.
	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache":   utils.GetCacheClient(),
		"auth":    utils.GetAuthCacheClient(),
		"session": utils.GetSessionCacheClient(),
	}, database.MongoClient)

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
