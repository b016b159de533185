package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsepoxy/website/internal/auth"
	"github.com/nsepoxy/website/internal/config"
	"github.com/nsepoxy/website/internal/leads"
	"github.com/nsepoxy/website/internal/web"
)

func main() {
	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.InsecureSecret() {
		logger.Warn("SESSION_SECRET is the development default; set a real secret in production")
	}

	// Lead store
	store, err := leads.Open(cfg.LeadsPath, logger)
	if err != nil {
		logger.Error("failed to open lead store", "error", err)
		os.Exit(1)
	}

	// Admin sessions
	sessions := auth.NewManager(
		cfg.AdminUsername, cfg.AdminPassword, cfg.SessionSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)

	// Router
	router, err := web.NewRouter(store, sessions, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	// Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("website starting", "addr", addr, "leads_path", cfg.LeadsPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
