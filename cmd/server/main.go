package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"study-mentor/internal/config"
	"study-mentor/internal/handlers"
	"study-mentor/internal/logging"
	"study-mentor/internal/router"
	"study-mentor/internal/services"
	"study-mentor/internal/websocket"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize Logger ────
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting study mentor backend", zap.String("env", cfg.Env))

	// ──── Step 3: Initialize Mentor Service ────
	mentorService := services.NewMentorService(cfg.UpstageAPIKey)
	status := mentorService.Status()
	logger.Info("mentor service initialized",
		zap.String("model", status.Model),
		zap.String("mode", string(status.Mode)))

	// ──── Step 4: Initialize Handlers ────
	mentorHandler := handlers.NewMentorHandler(mentorService, logger, cfg.MaxBodyBytes)
	mentorSocket := websocket.NewMentorSocket(mentorService, logger, cfg.MaxBodyBytes, cfg.FrontendURL)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		logger,
		mentorHandler,
		mentorSocket,
		cfg.FrontendURL,
	)

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

		logger.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("study mentor backend ready",
		zap.String("ui", fmt.Sprintf("http://localhost:%s/", cfg.Port)),
		zap.String("api", fmt.Sprintf("http://localhost:%s/api/mentor", cfg.Port)),
		zap.String("ws", fmt.Sprintf("ws://localhost:%s/api/mentor/ws", cfg.Port)))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
