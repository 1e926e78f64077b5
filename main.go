package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"homefix/app"
	"homefix/config"
	"homefix/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	application, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize app", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("main: failed to close app", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
