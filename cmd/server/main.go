package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waifuisalie/ChallengeChain/internal/api"
	"github.com/waifuisalie/ChallengeChain/internal/config"
	"github.com/waifuisalie/ChallengeChain/internal/handler"
	"github.com/waifuisalie/ChallengeChain/internal/logger"
	"github.com/waifuisalie/ChallengeChain/internal/middleware"
	"github.com/waifuisalie/ChallengeChain/internal/services"
	"github.com/waifuisalie/ChallengeChain/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.New(ctx, cfg)
	if err != nil {
		logger.Error("Storage initialization failed: %v", err)
		os.Exit(1)
	}
	defer closeStore()

	uploader, err := services.NewImageUploader(cfg)
	if err != nil {
		logger.Warning("Image upload disabled: %v", err)
	}

	uploadDir := ""
	if _, ok := uploader.(*services.LocalUploader); ok {
		uploadDir = cfg.UploadDir
	}

	router := api.SetupRouter(handler.New(store, uploader), api.Options{
		APIPrefix: cfg.APIPrefix,
		UploadDir: uploadDir,
		Metrics:   middleware.NewMetrics(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORSMiddleware(cfg.CORSOrigin)(router),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          logger.StdLogger(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed: %v", err)
		}
	}()

	logger.Success("Server starting on %s%s", cfg.URL, cfg.APIPrefix)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
