package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tutor-booking/internal/infra/db"
	"tutor-booking/internal/infra/repository"
	"tutor-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool when DB_DSN is unset; the stores then stay in memory.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !cfg.DB.Enabled() {
		logger.Info("DB_DSN not set, using in-memory snapshots and markers")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(ctx, pool, logger); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
