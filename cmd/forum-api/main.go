package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itchan-dev/forum-api/internal/config"
	"github.com/itchan-dev/forum-api/internal/logger"
	"github.com/itchan-dev/forum-api/internal/router"
	"github.com/itchan-dev/forum-api/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Setup(os.Stdout, logger.Options{Level: cfg.Public.LogLevel, JSON: cfg.Public.LogJSON, AddSource: true})

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Public.HttpAddr,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Info("server started", "addr", srv.Addr, "storage", cfg.Public.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Log.Error("server failed", "error", err)
			return
		}
	case <-ctx.Done():
		logger.Log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
	logger.Log.Info("server stopped")
}
