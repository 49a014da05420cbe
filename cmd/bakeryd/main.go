package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/app"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/audit"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/export"
	exporthttp "github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/export/http"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/platform/cache"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/platform/db"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/posapi"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/settings"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	client := posapi.NewClient(cfg.POSAPIURL, cfg.POSAPIToken, cfg.POSAPITimeout)

	var provider settings.Provider = settings.NewAPIProvider(client)
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, settings cache disabled", slog.Any("error", err))
	} else {
		provider = settings.NewCachedProvider(provider, redisClient, cfg.SettingsCacheTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	var recorder audit.Recorder
	if cfg.PGDSN != "" {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		recorder = audit.NewPGRecorder(pool)
	} else {
		logger.Info("audit trail disabled, no database configured")
	}

	exporter := export.NewExporter(client, provider, recorder, cfg.ReportCurrency, logger)
	exportHandler := exporthttp.NewHandler(logger, exporter)

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		ExportHandler: exportHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
