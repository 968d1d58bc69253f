package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/tathastu-fit/tathastu-erp/internal/analytics"
	"github.com/tathastu-fit/tathastu-erp/internal/app"
	"github.com/tathastu-fit/tathastu-erp/internal/finance"
	"github.com/tathastu-fit/tathastu-erp/internal/members"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/cache"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/db"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
	"github.com/tathastu-fit/tathastu-erp/internal/textgen"
	"github.com/tathastu-fit/tathastu-erp/jobs"
)

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

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	auditLogger := shared.NewAuditLogger(pool)
	generator := textgen.New(cfg.TextGenURL, cfg.TextGenKey, cfg.TextGenModel)

	financeRepo := finance.NewRepository(pool)
	financeCache := shared.NewCache(redisClient, cfg.CacheTTL, "finance")
	financeService := finance.NewService(financeRepo, financeCache, generator)

	memberRepo := members.NewRepository(pool)
	analyticsRepo := analytics.NewRepository(pool)
	analyticsCache := shared.NewCache(redisClient, cfg.CacheTTL, "analytics")
	analyticsService := analytics.NewService(analyticsRepo, members.HeightDirectory{Repo: memberRepo}, analyticsCache)

	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	memberService := members.NewService(memberRepo, financeService, analyticsService, jobClient, auditLogger,
		members.ServiceConfig{FallbackPlanPrice: cfg.FallbackPlanPrice})

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskRetentionNudge, Handler: jobs.NewRetentionNudgeHandler(logger, memberService)},
			{Type: jobs.TaskAnalysisWarmup, Handler: jobs.NewAnalysisWarmupHandler(logger, financeService)},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 10 * * *", Task: jobs.NewRetentionNudgeTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "30 5 * * *", Task: jobs.NewAnalysisWarmupTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
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
