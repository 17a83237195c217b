package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	neoservice "neolingo/contexts/curation/neo-service"
	genaiadapter "neolingo/contexts/curation/neo-service/adapters/genai"
	neopostgres "neolingo/contexts/curation/neo-service/adapters/postgres"
	neoworkers "neolingo/contexts/curation/neo-service/application/workers"
	neoports "neolingo/contexts/curation/neo-service/ports"
	catalogservice "neolingo/contexts/dictionary/catalog-service"
	catalogpostgres "neolingo/contexts/dictionary/catalog-service/adapters/postgres"
	authorization "neolingo/contexts/identity-access/authorization-service"
	authpostgres "neolingo/contexts/identity-access/authorization-service/adapters/postgres"
	"neolingo/internal/platform/config"
	"neolingo/internal/platform/db"
	"neolingo/internal/platform/httpserver"
	"neolingo/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  neoworkers.OutboxRelay
	enabled      bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	authRepo := authpostgres.NewRepository(pg.DB, logger)
	authModule := authorization.NewModule(authorization.Dependencies{
		Roles:  authRepo,
		Clock:  authpostgres.SystemClock{},
		Logger: logger,
	})

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalogModule := catalogservice.NewModule(catalogservice.Dependencies{
		Repository: catalogRepo,
		Clock:      catalogpostgres.SystemClock{},
		IDGen:      catalogpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	var reviewer neoports.ContentReviewer
	if cfg.EnableContentReview && cfg.GenAIAPIKey != "" {
		built, err := genaiadapter.NewReviewer(context.Background(), cfg.GenAIAPIKey, cfg.GenAIModel, logger)
		if err != nil {
			return nil, err
		}
		reviewer = built
	}

	neoRepo := neopostgres.NewRepository(pg.DB, logger)
	curationModule := neoservice.NewModule(neoservice.Dependencies{
		Neos:     neoRepo,
		Terms:    neoRepo,
		Reviewer: reviewer,
		Outbox:   neoRepo,
		Clock:    neopostgres.SystemClock{},
		IDGen:    neopostgres.UUIDGenerator{},
		Logger:   logger,
	})

	server := httpserver.New(authModule, catalogModule, curationModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	neoRepo := neopostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: neoworkers.OutboxRelay{
			Outbox:    neoRepo,
			Publisher: bus,
			Clock:     neopostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		enabled:      cfg.EnableOutboxRelay,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info("outbox relay disabled, worker idle",
			"event", "bootstrap_worker_idle",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
