package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/app"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/audit"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/export"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/platform/cache"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/platform/db"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/posapi"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/settings"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/jobs"
)

// digestKinds are the reports included in the nightly digest run.
var digestKinds = []string{"sales", "purchases", "inventory", "production", "financial", "expenses"}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	}

	exporter := export.NewExporter(client, provider, recorder, cfg.ReportCurrency, logger)
	runner := jobs.NewRunner(exporter, cfg.ReportOutputDir, logger)

	var cron []jobs.CronRegistration
	if cfg.DigestCronSpec != "" {
		digestTask, err := jobs.NewDigestTask(jobs.DigestPayload{Kinds: digestKinds})
		if err != nil {
			logger.Error("build digest task", slog.Any("error", err))
			os.Exit(1)
		}
		cron = append(cron, jobs.CronRegistration{
			Spec:    cfg.DigestCronSpec,
			Task:    digestTask,
			Options: []asynq.Option{asynq.MaxRetry(3)},
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Runner:    runner,
		Cron:      cron,
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
