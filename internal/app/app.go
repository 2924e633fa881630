package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/something-core/internal/data/db"
	httpserver "github.com/yungbote/something-core/internal/http"
	"github.com/yungbote/something-core/internal/observability"
	"github.com/yungbote/something-core/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Server   *httpserver.Server

	store        *db.PostgresService
	otelShutdown func(context.Context) error
}

// Open connects the store and builds the logger; both serve and migrate need it.
func Open(cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	store, err := db.NewPostgresService(cfg.DB(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	return &App{Log: log, DB: store.DB(), Cfg: cfg, store: store}, nil
}

func (a *App) Migrate() error {
	a.Log.Info("Running migrations...")
	return db.AutoMigrateAll(a.DB)
}

// Wire builds everything Run needs on top of an opened App.
func (a *App) Wire(ctx context.Context) error {
	a.otelShutdown = observability.InitOTel(ctx, a.Log, a.Cfg.Otel)

	sqlDB, err := a.DB.DB()
	if err != nil {
		return fmt.Errorf("store handle: %w", err)
	}

	var metrics *observability.Metrics
	if a.Cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
		dbName := a.Cfg.PostgresName
		if a.Cfg.DBDriver == db.DriverSQLite {
			dbName = db.DriverSQLite
		}
		if err := metrics.RegisterDBStats(sqlDB, dbName); err != nil {
			a.Log.Warn("db stats collector not registered", "error", err)
		}
	}

	a.Repos = wireRepos(a.DB, a.Log)
	a.Services = wireServices(a.Log, a.Repos, metrics)
	handlerset := wireHandlers(a.Log, a.Services, sqlDB)
	a.Server = httpserver.NewServer(httpserver.RouterConfig{
		ServiceName:    a.Cfg.Otel.ServiceName,
		AllowedOrigins: a.Cfg.AllowedOrigins,
		Log:            a.Log,
		Metrics:        metrics,
		ThingHandler:   handlerset.Thing,
		HealthHandler:  handlerset.Health,
	}, a.Cfg.Addr())
	return nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a.Server == nil {
		return errors.New("app not wired")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	a.Log.Sync()
}
