package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"case-studio/cmd/api/httpclient"
	"case-studio/cmd/api/router"
	"case-studio/cmd/api/services"
	"case-studio/cmd/api/trace"
	"case-studio/internal/logger"
	"case-studio/config"
	"case-studio/db"
	"case-studio/generator"
	"case-studio/repositories"
)

// @title           Case Studio API
// @version         1.0
// @description     Logistics case study and numericals generator backed by Gemini
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	gemini, err := generator.NewGemini(ctx, generator.GeminiConfig{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		Timeout:    time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
		HTTPClient: httpclient.New(httpclient.Config{}),
	})
	if err != nil {
		logger.Log.Errorf("failed to init genai client: %v", err)
		os.Exit(1)
	}

	var gen generator.Generator = generator.NewInstrumented(gemini)
	switch err := db.Init(ctx, cfg.Mongo); {
	case err == nil:
		gen = generator.NewAudited(gen, repositories.NewGenerationLogRepository(db.Database()), gemini.Model(), trace.RequestIDFromContext)
	case errors.Is(err, db.ErrDisabled):
		logger.Log.Info("mongo uri not set, generation audit log disabled")
	default:
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	engine := router.New(router.Options{
		Generation:       services.NewGenerationService(gen),
		ChatInlineErrors: cfg.ChatInlineErrors(),
		StaticDir:        cfg.Server.StaticDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.Handler(engine, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("server listening", logger.Fields{
			"addr":  srv.Addr,
			"model": gemini.Model(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Log.Warnf("mongo disconnect failed: %v", err)
	}
	logger.Log.Info("server exited")
}
