package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/advisor"
	httptransport "github.com/spec-kit/sla-dashboard/internal/api/http"
	"github.com/spec-kit/sla-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/sla-dashboard/internal/auth"
	"github.com/spec-kit/sla-dashboard/internal/config"
	"github.com/spec-kit/sla-dashboard/internal/events"
	"github.com/spec-kit/sla-dashboard/internal/observability"
	"github.com/spec-kit/sla-dashboard/internal/persistence"
	"github.com/spec-kit/sla-dashboard/internal/repository"
	"github.com/spec-kit/sla-dashboard/internal/service"
	"github.com/spec-kit/sla-dashboard/internal/snapshot"
	"github.com/spec-kit/sla-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readiness := map[string]handlers.Pinger{}

	var (
		ticketRepo     repository.TicketRepository
		datacenterRepo repository.DatacenterRepository
	)
	if cfg.Postgres.DSN != "" {
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		ticketRepo = repository.NewTicketRepository(pg.PoolHandle())
		datacenterRepo = repository.NewDatacenterRepository(pg.PoolHandle())
		readiness["postgres"] = pg
	} else {
		logger.Warn("POSTGRES_DSN not set; tickets are kept in memory")
		ticketRepo = repository.NewMemoryTicketRepository()
		datacenterRepo = repository.NewMemoryDatacenterRepository()
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	readiness["redis"] = redis

	audit, err := persistence.NewSQLite(ctx, cfg.SQLite, logger)
	if err != nil {
		logger.Fatal("failed to open sqlite", zap.Error(err))
	}
	defer audit.Close()
	readiness["sqlite"] = audit

	policy, err := config.LoadReminderPolicy(cfg.Reminder.PolicyFile)
	if err != nil {
		logger.Fatal("failed to load reminder policy", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	snapshots := snapshot.NewCachedProvider(snapshot.NewRepositoryProvider(ticketRepo, datacenterRepo), cfg.Snapshot.TTL())

	seedService := service.NewSeedService(service.SeedDependencies{
		TicketRepo:     ticketRepo,
		DatacenterRepo: datacenterRepo,
		Cache:          snapshots,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, metrics, cfg.Reminder))

	if cfg.App.SeedOnStart {
		if _, err := seedService.Ensure(ctx, cfg.App.DataDir); err != nil {
			logger.Warn("initial seed failed", zap.String("dir", cfg.App.DataDir), zap.Error(err))
		}
	}

	slaService := service.NewSlaService(snapshots, nil)

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness)

	var remote service.Summarizer
	if cfg.Advisor.BaseURL != "" {
		client := advisor.New(cfg.Advisor.BaseURL, cfg.Advisor.APIToken, advisor.WithTimeout(cfg.Advisor.Timeout()))
		healthHandler.WithOptional("advisor", client)
		remote = client
	} else {
		logger.Info("ADVISOR_BASE_URL not set; summaries are built locally")
	}
	advisorService := service.NewAdvisorService(service.AdvisorDependencies{
		Remote:  remote,
		Sla:     slaService,
		Runs:    repository.NewAdvisorRunRepository(audit.DB),
		Metrics: metrics,
		Logger:  logger,
	})

	reminderService := service.NewReminderService(service.ReminderDependencies{
		Snapshots:  snapshots,
		Policy:     policy,
		Dedupe:     redis,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	go worker.NewReminderWorker(reminderService, cfg.Reminder.Interval(), logger).Run(ctx)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Sla:            handlers.NewSlaHandler(slaService),
		Advisor:        handlers.NewAdvisorHandler(advisorService),
		Admin:          handlers.NewAdminHandler(seedService, cfg.App.DataDir, logger),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
