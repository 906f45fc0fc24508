package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap/config"
	"skillswap/cron"
	"skillswap/database"
	availabilityRepoPkg "skillswap/database/repository/availability"
	connectionRepoPkg "skillswap/database/repository/connection"
	messageRepoPkg "skillswap/database/repository/message"
	userRepoPkg "skillswap/database/repository/user"
	"skillswap/handlers"
	"skillswap/middleware"
	"skillswap/routes"
	availabilitySvc "skillswap/services/availability"
	connectionSvc "skillswap/services/connection"
	"skillswap/services/notification"
	userSvc "skillswap/services/user"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	connRepo := connectionRepoPkg.NewMongoConnectionRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	msgRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	notificationService := notification.NewService(msgRepo)
	availabilityService := availabilitySvc.NewService(availRepo, utils.GetCacheClient())
	connectionService := connectionSvc.NewService(connRepo, availRepo, reminderClient)
	userService := userSvc.NewService(usrRepo, utils.GetAuthCacheClient())

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userService,
		availabilityService,
		connectionService,
		notificationService,
		connRepo,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder delivery.
	cron.InitReminderWorker(notificationService, connRepo)
	go utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

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
