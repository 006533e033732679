package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ytkeypoints/internal/config"
	"ytkeypoints/internal/handlers"
	"ytkeypoints/internal/keypoints"
	"ytkeypoints/internal/logger"
	"ytkeypoints/internal/version"
	"ytkeypoints/internal/youtube"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// 依存関係の組み立て
	transcripts := youtube.NewClient(cfg.TranscriptTimeout, youtube.WithLogger(logr))
	summarizer := keypoints.NewClient(cfg.KeyPoints(), logr)
	api := handlers.NewAPIHandler(transcripts, summarizer, logr)

	e := handlers.NewServer(api, logr, cfg.Debug)

	go func() {
		logr.WithFields(logrus.Fields{
			"version": version.Version,
			"port":    cfg.Port,
		}).Info("Starting ytkeypoints")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.WithError(err).Fatal("Server error")
		}
	}()

	// グレースフルシャットダウン
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logr.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logr.WithError(err).Error("Server shutdown error")
	}
}
