package queries

import (
	"context"
	"sort"

	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/settlement"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

type AdminQueries interface {
	Locks() []settlement.LockInfo
	Snapshots(ctx context.Context) ([]reconcile.Snapshot, error)
}

type adminQueriesImpl struct {
	locks     *settlement.LockStore
	snapshots reconcile.SnapshotStore
}

func NewAdminQueries(locks *settlement.LockStore, snapshots reconcile.SnapshotStore) AdminQueries {
	return &adminQueriesImpl{locks: locks, snapshots: snapshots}
}

func (q *adminQueriesImpl) Locks() []settlement.LockInfo {
	out := q.locks.Snapshot()
	sort.Slice(out, func(i, j int) bool { return out[i].AcquiredAt.Before(out[j].AcquiredAt) })
	return out
}

func (q *adminQueriesImpl) Snapshots(ctx context.Context) ([]reconcile.Snapshot, error) {
	return q.snapshots.List(ctx)
}
