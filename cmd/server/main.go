package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/config"
	"github.com/Hari569/habit-tracker/internal/api"
	"github.com/Hari569/habit-tracker/internal/cache"
	"github.com/Hari569/habit-tracker/internal/db"
	"github.com/Hari569/habit-tracker/internal/mq"
	"github.com/Hari569/habit-tracker/internal/repository"
	"github.com/Hari569/habit-tracker/internal/service"
	"github.com/Hari569/habit-tracker/pkg/logger"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// 3. Init RabbitMQ publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("MQ initialization failed", zap.Error(err))
	}
	defer publisher.Close()

	// 4. Init Redis analytics cache
	rdb := cache.NewRedisClient(cfg.Redis)
	analyticsCache := cache.NewAnalyticsCache(
		rdb,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log,
	)

	// 5. Init repositories
	userRepo := repository.NewUserRepository(dbConn, log)
	habitRepo := repository.NewHabitRepository(dbConn, log)
	completionRepo := repository.NewCompletionRepository(dbConn, log)

	// 6. Init services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	habitService := service.NewHabitService(habitRepo, publisher, analyticsCache, log)
	completionService := service.NewCompletionService(habitRepo, completionRepo, publisher, analyticsCache, log)
	analyticsService := service.NewAnalyticsService(habitRepo, completionRepo, analyticsCache, log)

	// 7. Init handlers
	authHandler := api.NewAuthHandler(authService)
	habitHandler := api.NewHabitHandler(habitService, log)
	completionHandler := api.NewCompletionHandler(completionService, log)
	analyticsHandler := api.NewAnalyticsHandler(analyticsService, log)

	// 8. Init router
	router := api.NewRouter(
		authHandler,
		habitHandler,
		completionHandler,
		analyticsHandler,
		cfg.JWT.Secret,
		log,
		dbConn,
		publisher,
	)

	// 9. Run server
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
