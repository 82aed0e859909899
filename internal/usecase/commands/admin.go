package commands

import (
	"context"
	"log/slog"

	"tutor-booking/internal/usecase/reconcile"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

type AdminCommands interface {
	RunReconcile(ctx context.Context) reconcile.CycleReport
	SweepLocks() []string
}

type Reconciler interface {
	RunCycle(ctx context.Context) reconcile.CycleReport
}

type LockSweeper interface {
	Sweep() []string
}

type adminCommandsImpl struct {
	reconciler Reconciler
	locks      LockSweeper
	logger     *slog.Logger
}

func NewAdminCommands(reconciler Reconciler, locks LockSweeper, logger *slog.Logger) AdminCommands {
	return &adminCommandsImpl{reconciler: reconciler, locks: locks, logger: logger}
}

func (c *adminCommandsImpl) RunReconcile(ctx context.Context) reconcile.CycleReport {
	report := c.reconciler.RunCycle(ctx)
	c.logger.InfoContext(ctx, "manual reconcile cycle",
		slog.Int("events", report.Events),
		slog.Int("assigned", report.Assigned),
		slog.Int("failures", report.Failures))
	return report
}

func (c *adminCommandsImpl) SweepLocks() []string {
	return c.locks.Sweep()
}
