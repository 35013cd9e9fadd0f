package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ShishirShekhar/E-Learning-Platform/internal/ai"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/config"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/db"
	internalhttp "github.com/ShishirShekhar/E-Learning-Platform/internal/http"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/jobs"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/metrics"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/repository"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("db ping failed", zap.Error(err))
	}

	store := repository.NewStore(pool)
	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	aiClient := ai.New(ai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.OpenAITimeout,
	}, logger)

	server := internalhttp.NewServer(cfg, store, aiClient, collector, logger)

	if cfg.QuizJobEnabled {
		scheduler := jobs.NewQuizScheduler(store, aiClient, collector, logger, cfg.QuizJobAPIPause)
		cronRunner := scheduler.Start(ctx)
		defer func() { <-cronRunner.Stop().Done() }()
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
