package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/tathastu-fit/tathastu-erp/internal/analytics"
	"github.com/tathastu-fit/tathastu-erp/internal/app"
	"github.com/tathastu-fit/tathastu-erp/internal/diet"
	"github.com/tathastu-fit/tathastu-erp/internal/equipment"
	"github.com/tathastu-fit/tathastu-erp/internal/finance"
	"github.com/tathastu-fit/tathastu-erp/internal/inventory"
	"github.com/tathastu-fit/tathastu-erp/internal/leads"
	"github.com/tathastu-fit/tathastu-erp/internal/members"
	"github.com/tathastu-fit/tathastu-erp/internal/overview"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/cache"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/db"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
	"github.com/tathastu-fit/tathastu-erp/internal/staff"
	"github.com/tathastu-fit/tathastu-erp/internal/textgen"
	"github.com/tathastu-fit/tathastu-erp/jobs"
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

	auditLogger := shared.NewAuditLogger(pool)
	generator := textgen.New(cfg.TextGenURL, cfg.TextGenKey, cfg.TextGenModel)

	financeRepo := finance.NewRepository(pool)
	financeCache := shared.NewCache(redisClient, cfg.CacheTTL, "finance")
	financeService := finance.NewService(financeRepo, financeCache, generator)
	financeHandler := finance.NewHandler(logger, financeService)

	memberRepo := members.NewRepository(pool)
	analyticsRepo := analytics.NewRepository(pool)
	analyticsCache := shared.NewCache(redisClient, cfg.CacheTTL, "analytics")
	analyticsService := analytics.NewService(analyticsRepo, members.HeightDirectory{Repo: memberRepo}, analyticsCache)
	analyticsHandler := analytics.NewHandler(logger, analyticsService)

	memberService := members.NewService(memberRepo, financeService, analyticsService, jobClient, auditLogger,
		members.ServiceConfig{FallbackPlanPrice: cfg.FallbackPlanPrice})
	memberHandler := members.NewHandler(logger, memberService)

	inventoryRepo := inventory.NewRepository(pool)
	inventoryService := inventory.NewService(inventoryRepo, financeService, auditLogger)
	inventoryHandler := inventory.NewHandler(logger, inventoryService)

	equipmentRepo := equipment.NewRepository(pool)
	equipmentService := equipment.NewService(equipmentRepo, financeService, auditLogger, cfg.EquipmentServiceCost)
	equipmentHandler := equipment.NewHandler(logger, equipmentService)

	staffRepo := staff.NewRepository(pool)
	staffService := staff.NewService(staffRepo, financeService, auditLogger)
	staffHandler := staff.NewHandler(logger, staffService)

	leadRepo := leads.NewRepository(pool)
	leadService := leads.NewService(leadRepo, generator, auditLogger, nil)
	leadHandler := leads.NewHandler(logger, leadService)

	dietHandler := diet.NewHandler(diet.NewService(generator))

	overviewService := overview.NewService(memberService, equipmentService, inventoryService)
	overviewHandler := overview.NewHandler(logger, overviewService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:    logger,
		Config:    cfg,
		Members:   memberHandler,
		Analytics: analyticsHandler,
		Inventory: inventoryHandler,
		Equipment: equipmentHandler,
		Staff:     staffHandler,
		Finance:   financeHandler,
		Leads:     leadHandler,
		Diet:      dietHandler,
		Overview:  overviewHandler,
		Jobs:      jobHandler,
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
