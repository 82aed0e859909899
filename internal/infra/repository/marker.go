package repository

import (
	"context"
	"log/slog"

	"tutor-booking/internal/infra"
)

// MarkerRepository records settled direct-booking keys.
type MarkerRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewMarkerRepository(db DBTX, logger *slog.Logger) *MarkerRepository {
	return &MarkerRepository{db: db, logger: logger}
}

func (r *MarkerRepository) IsProcessed(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM processed_markers WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, infra.WrapCollaboratorErr(r.logger, collaborator, infra.KindDBFailure, "failed to read processed marker", err)
	}
	return exists, nil
}

func (r *MarkerRepository) MarkProcessed(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO processed_markers (key) VALUES ($1) ON CONFLICT (key) DO NOTHING`, key)
	if err != nil {
		return infra.WrapCollaboratorErr(r.logger, collaborator, infra.KindDBFailure, "failed to write processed marker", err)
	}
	return nil
}
