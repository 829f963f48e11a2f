package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crmchat-backend/internal/config"
	"crmchat-backend/internal/handlers"
	"crmchat-backend/internal/middleware"
	"crmchat-backend/internal/router"
	"crmchat-backend/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logger := log.With().Str("component", "main").Logger()

	// ──── Step 1: Load and Validate Configuration ────
	// Must happen before any listener binds: the service refuses to run
	// without a provider credential.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration error")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger.Info().Str("env", cfg.Env).Msg("configuration loaded")

	// ──── Step 2: Resolve System Prompt ────
	systemPrompt := services.DefaultSystemPrompt
	if cfg.SystemPromptFile != "" {
		data, err := os.ReadFile(cfg.SystemPromptFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.SystemPromptFile).Msg("failed to read system prompt file")
		}
		systemPrompt = string(data)
		logger.Info().Str("file", cfg.SystemPromptFile).Msg("system prompt loaded from file")
	}

	// ──── Step 3: Initialize OpenAI Service ────
	openaiService := services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, systemPrompt)
	logger.Info().Str("model", cfg.OpenAIModel).Msg("OpenAI client initialized")

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(openaiService)
	limiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	r := router.New(chatHandler, limiter, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info().Msgf("server ready on http://localhost:%s", cfg.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}
