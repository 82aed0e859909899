package components

import (
	"log/slog"

	"tutor-booking/internal/infra/repository"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSnapshotStore,
		NewProcessedMarkers,
	),
)

// NewSnapshotStore persists attendee snapshots in Postgres when a pool is
// configured so a restart does not re-notify already assigned sessions.
func NewSnapshotStore(pool *pgxpool.Pool, logger *slog.Logger) reconcile.SnapshotStore {
	if pool == nil {
		return reconcile.NewMemorySnapshotStore()
	}
	return repository.NewSnapshotRepository(pool, logger)
}

func NewProcessedMarkers(pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) shared.ProcessedMarkers {
	if pool == nil {
		return settlement.NewMemoryMarkers(clk)
	}
	return repository.NewMarkerRepository(pool, logger)
}
