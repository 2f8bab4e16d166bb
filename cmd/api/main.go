package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-transformer/internal/api"
	"recipe-transformer/internal/core/ai/cache"
	"recipe-transformer/internal/core/ai/queue"
	"recipe-transformer/internal/core/ai/service"
	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.Log.Level, cfg.Log.Mode, cfg.Log.Dir); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("Config loaded",
		zap.String("provider", cfg.AI.Provider),
		zap.String("api_key", config.MaskAPIKey(cfg.AI.APIKey)),
		zap.String("model", cfg.AI.Model),
		zap.Bool("ai_configured", cfg.AI.Configured()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	ctx := context.Background()

	store, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	p, err := service.NewProvider(ctx, cfg.AI)
	if err != nil {
		common.LogFatal("Failed to initialize model provider", zap.Error(err))
	}

	q := queue.NewManager(cfg.AI.Workers, cfg.AI.MaxQueueSize)
	q.Start()
	defer q.Close()

	opts := []service.Option{service.WithQueue(q)}
	if store != nil {
		opts = append(opts, service.WithCache(store))
	}
	aiService := service.NewService(p, opts...)
	defer aiService.Close()

	router := api.SetupRouter(cfg, api.Dependencies{
		AI:    aiService,
		Queue: q,
		Cache: store,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
	}

	common.LogInfo("server exited")
}
