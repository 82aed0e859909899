//go:build integration

package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tutor-booking/internal/infra/repository"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	suite.Suite
	ctx       context.Context
	snapshots *repository.SnapshotRepository
	markers   *repository.MarkerRepository
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pool := dbtest.NewPool(s.T())
	require.NoError(s.T(), repository.Migrate(s.ctx, pool, logger))
	require.NoError(s.T(), repository.Migrate(s.ctx, pool, logger), "migrate is idempotent")

	s.snapshots = repository.NewSnapshotRepository(pool, logger)
	s.markers = repository.NewMarkerRepository(pool, logger)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) TestSnapshot_PutGetList() {
	t := s.T()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, found, err := s.snapshots.Get(s.ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.snapshots.Put(s.ctx, reconcile.Snapshot{EventID: "evt_2", Calendar: "econ", LastUpdated: at}))
	require.NoError(t, s.snapshots.Put(s.ctx, reconcile.Snapshot{EventID: "evt_1", Calendar: "econ", LastUpdated: at}))
	require.NoError(t, s.snapshots.Put(s.ctx, reconcile.Snapshot{
		EventID:     "evt_1",
		Calendar:    "econ",
		Attendees:   []string{"maria@tutorly.example"},
		LastUpdated: at.Add(time.Minute),
	}))

	got, found, err := s.snapshots.Get(s.ctx, "evt_1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"maria@tutorly.example"}, got.Attendees)
	assert.True(t, got.LastUpdated.Equal(at.Add(time.Minute)))

	all, err := s.snapshots.List(s.ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "evt_1", all[0].EventID)
	assert.Empty(t, all[1].Attendees)
}

func (s *RepositorySuite) TestMarkers() {
	t := s.T()

	done, err := s.markers.IsProcessed(s.ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, s.markers.MarkProcessed(s.ctx, "key-1"))
	require.NoError(t, s.markers.MarkProcessed(s.ctx, "key-1"))

	done, err = s.markers.IsProcessed(s.ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, done)
}
