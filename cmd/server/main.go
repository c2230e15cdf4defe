package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"PortfolioDesk/internal/config"
	"PortfolioDesk/internal/handlers"
	"PortfolioDesk/internal/middleware"
	"PortfolioDesk/internal/repo"
	"PortfolioDesk/internal/service"
	"PortfolioDesk/internal/storage"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize object store", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)
	summaryService := service.NewSummaryService(gormDB)

	h := handlers.NewHandler(gormDB, userService, summaryService, store, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"S3Bucket", cfg.S3Bucket,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
