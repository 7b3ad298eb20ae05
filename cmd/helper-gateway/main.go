// cmd/helper-gateway/main.go
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

	"helper-directory/internal/common/config"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/observability"
	"helper-directory/internal/directory"
	"helper-directory/internal/gateway"
	"helper-directory/internal/geo"
	"helper-directory/internal/screens/registration"
	"helper-directory/internal/screens/search"
	"helper-directory/pkg/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting helper gateway...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err))
		}
		zapLog.Info("catalog loaded", zap.String("path", cfg.Catalog.Path))
	}

	geoClient := geo.NewClient(cfg.Geo.BaseURL, cfg.Geo.APIKey, cfg.Geo.GetTimeout(), log)
	dirClient := directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.GetTimeout(), log)

	regService := registration.NewService(dirClient, cat, log)
	searchService := search.NewService(dirClient, log)

	handlers := gateway.NewHandlers(geoClient, regService, searchService, cat, log)
	router := gateway.NewRouter(handlers, cfg.Server, log, obs)

	srv := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	serverErrors := make(chan error, 1)
	go func() {
		zapLog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		zapLog.Info("shutdown signal received")
	case err := <-serverErrors:
		zapLog.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	} else {
		zapLog.Info("shutdown complete")
	}
}
