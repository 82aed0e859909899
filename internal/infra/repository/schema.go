package repository

import (
	"context"
	"log/slog"

	"tutor-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const collaborator = "postgres"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS reconcile_snapshots (
    event_id     TEXT PRIMARY KEY,
    calendar     TEXT NOT NULL,
    attendees    TEXT[] NOT NULL DEFAULT '{}',
    last_updated TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS processed_markers (
    key          TEXT PRIMARY KEY,
    processed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates the tables used by the durable stores. It is idempotent.
func Migrate(ctx context.Context, db DBTX, logger *slog.Logger) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return infra.WrapCollaboratorErr(logger, collaborator, infra.KindDBFailure, "failed to apply schema", err)
	}
	return nil
}
