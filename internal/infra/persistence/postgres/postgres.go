package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"budget/config"
	"budget/internal/domain/lifecycle"
	"budget/internal/errors"
	"budget/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// migrateUp applies the embedded goose migrations up to the latest version.
func migrateUp(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	return goose.UpContext(ctx, db, ".")
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (plus configured replicas), applies the
// schema on start when migrations are enabled and samples pool contention
// until the app stops.
func New(params Params) (*gorm.DB, error) {
	opened, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db := opened.Session(&gorm.Session{
		// Multi-step work goes through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watcher := &poolWatcher{logger: params.Logger, stats: sqlDB.Stats}
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := prepareSchema(ctx, sqlDB, params.Config, params.Logger); err != nil {
				return err
			}

			watchCtx, cancel := context.WithCancel(context.Background())
			stopWatch = cancel
			go watcher.run(watchCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func prepareSchema(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, logger *slog.Logger) error {
	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if cfg == nil || cfg.Migrate == nil || !cfg.Migrate.Enabled {
		return nil
	}
	if err := migrateUp(ctx, sqlDB); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}
	logger.InfoContext(ctx, "Database migrations applied")

	return nil
}

// poolWatcher reports callers that had to wait for a free connection since
// the previous sample.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	last   sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, every time.Duration) {
	if w.logger == nil {
		return
	}

	w.last = w.stats()
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

func (w *poolWatcher) sample(ctx context.Context) {
	cur := w.stats()
	prev := w.last
	w.last = cur

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waited >= poolWaitWarnAfter {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}

	w.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
