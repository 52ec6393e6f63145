// File: pirouette/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pirouette/config"
	"pirouette/cron"
	"pirouette/database"
	classRepo "pirouette/database/repository/class"
	studioRepo "pirouette/database/repository/studio"
	"pirouette/handlers"
	"pirouette/middleware"
	"pirouette/routes"
	"pirouette/services/notification"
	"pirouette/services/scheduling"
	"pirouette/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	classes := classRepo.NewMongoClassRepo()
	studios := studioRepo.NewMongoStudioRepo()

	if err := classes.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to ensure class indexes: %v", err)
	}

	// services.
	notificationService := &notification.DefaultNotificationService{Logger: logger}
	reminderScheduler := notification.NewAsynqReminderScheduler(logger)

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Repo:             classes,
		SessionCache:     utils.GetSessionCacheClient(),
		Reminders:        reminderScheduler,
		Logger:           logger,
		ConfirmThreshold: config.AppConfig.ScheduleConfirmThreshold,
		Strategy:         config.AppConfig.BatchStrategy,
	}

	classHandler := handlers.NewClassHandler(schedulingEngine, classes, logger)
	studioHandler := handlers.NewStudioHandler(studios, schedulingEngine, logger)

	// Register routes.
	routes.RegisterRoutes(router, classHandler, studioHandler)

	// Start the reminder worker.
	cron.InitReminderWorker(notificationService)

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
