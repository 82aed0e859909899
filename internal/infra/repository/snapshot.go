package repository

import (
	"context"
	"errors"
	"log/slog"

	"tutor-booking/internal/infra"
	"tutor-booking/internal/usecase/reconcile"

	"github.com/jackc/pgx/v5"
)

// SnapshotRepository persists attendee snapshots so a restart does not re-fire claims.
type SnapshotRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewSnapshotRepository(db DBTX, logger *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, logger: logger}
}

func (r *SnapshotRepository) Get(ctx context.Context, eventID string) (reconcile.Snapshot, bool, error) {
	var s reconcile.Snapshot
	err := r.db.QueryRow(ctx,
		`SELECT event_id, calendar, attendees, last_updated FROM reconcile_snapshots WHERE event_id = $1`,
		eventID,
	).Scan(&s.EventID, &s.Calendar, &s.Attendees, &s.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return reconcile.Snapshot{}, false, nil
	}
	if err != nil {
		return reconcile.Snapshot{}, false, infra.WrapCollaboratorErr(r.logger, collaborator, infra.KindDBFailure, "failed to get snapshot", err)
	}
	return s, true, nil
}

func (r *SnapshotRepository) Put(ctx context.Context, s reconcile.Snapshot) error {
	attendees := s.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO reconcile_snapshots (event_id, calendar, attendees, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO UPDATE
		SET calendar = EXCLUDED.calendar,
		    attendees = EXCLUDED.attendees,
		    last_updated = EXCLUDED.last_updated`,
		s.EventID, s.Calendar, attendees, s.LastUpdated)
	if err != nil {
		return infra.WrapCollaboratorErr(r.logger, collaborator, infra.KindDBFailure, "failed to put snapshot", err)
	}
	return nil
}

func (r *SnapshotRepository) List(ctx context.Context) ([]reconcile.Snapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id, calendar, attendees, last_updated FROM reconcile_snapshots ORDER BY event_id`)
	if err != nil {
		return nil, infra.WrapCollaboratorErr(r.logger, collaborator, infra.KindDBFailure, "failed to list snapshots", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (reconcile.Snapshot, error) {
		var s reconcile.Snapshot
		err := row.Scan(&s.EventID, &s.Calendar, &s.Attendees, &s.LastUpdated)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapCollaboratorErr(r.logger, collaborator, infra.KindDBFailure, "failed to scan snapshots", err)
	}
	return out, nil
}
