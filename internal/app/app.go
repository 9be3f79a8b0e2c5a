// Package app wires configuration, storage and services together for the
// binaries under cmd/.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fincontrol/internal/advisor"
	"fincontrol/internal/config"
	"fincontrol/internal/database"
	"fincontrol/internal/logger"
	"fincontrol/internal/metrics"
	"fincontrol/internal/services"
	"fincontrol/internal/storage"
)

// App owns the loaded store, the services built on it and the resources
// behind persistence.
type App struct {
	Config *config.Config
	Store  *services.Store

	Transactions services.TransactionServicer
	Goals        services.GoalServicer
	Dashboard    services.DashboardServicer
	Reports      services.ReportServicer
	Backup       services.BackupServicer
	Advisor      services.AdvisorServicer

	db     *database.Manager
	kv     storage.KeyValueStore
	writer *storage.Writer
}

// New opens the configured backend, loads both collections and subscribes
// the persistence writer to the store.
func New(ctx context.Context, cfg *config.Config, recorder metrics.Recorder) (*App, error) {
	if recorder == nil {
		recorder = metrics.NoOp{}
	}
	a := &App{Config: cfg}

	var db *gorm.DB
	if database.UsesDatabase(cfg) {
		manager, err := database.NewManager(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := manager.Migrate(); err != nil {
			_ = manager.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		a.db = manager
		db = manager.DB()
	}

	kv, err := storage.NewStore(cfg, db)
	if err != nil {
		a.closeDB()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	a.kv = kv

	repo := storage.NewRepository(kv)
	a.Store = services.LoadStore(ctx, repo)
	a.writer = storage.NewWriter(repo, storage.WriterConfig{}, recorder)
	a.Store.Subscribe(services.NewPersistenceSubscriber(a.writer))

	client, err := advisor.NewClient(ctx, cfg, recorder)
	if err != nil {
		logger.Get().Warnw("AI client unavailable, AI features disabled", "error", err)
		client = advisor.DisabledClient{}
	}

	a.Transactions = services.NewTransactionService(a.Store)
	a.Goals = services.NewGoalService(a.Store)
	a.Dashboard = services.NewDashboardService(a.Store, time.Now)
	a.Reports = services.NewReportService(a.Store, time.Now)
	a.Backup = services.NewBackupService(a.Store, time.Now)
	a.Advisor = services.NewAdvisorService(a.Store, client, time.Now)

	logger.Get().Infow("Storage ready", "backend", kv.Name())
	return a, nil
}

// Close flushes pending snapshots and releases the backend.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.writer != nil {
		if err := a.writer.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush pending writes: %w", err))
		}
	}
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) closeDB() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		logger.Get().Warnw("Failed to close database", "error", err)
	}
}
