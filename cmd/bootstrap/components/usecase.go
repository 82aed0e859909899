package components

import (
	"log/slog"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/usecase/commands"
	"tutor-booking/internal/usecase/notify"
	"tutor-booking/internal/usecase/queries"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	NewBookingFactory,
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		fx.Annotate(
			NewLockStore,
			fx.As(fx.Self()),
			fx.As(new(commands.LockSweeper)),
		),
		fx.Annotate(
			settlement.NewService,
			fx.As(new(commands.Settler)),
		),
		fx.Annotate(
			NewReconcileService,
			fx.As(fx.Self()),
			fx.As(new(commands.Reconciler)),
		),
		notify.NewFanOut,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewHealthQueries,
		queries.NewAdminQueries,
	),
)

func NewBookingFactory(cfg config.Config, clk clock.Clock, prices booking.PriceCalculator, loc *time.Location) *booking.Factory {
	return booking.NewFactory(clk, prices, cfg.Settlement.LeadTime, loc)
}

func NewLockStore(cfg config.Config, clk clock.Clock) *settlement.LockStore {
	return settlement.NewLockStore(clk, cfg.Settlement.LockTTL)
}

func NewReconcileService(
	cfg config.Config,
	calendars shared.CalendarStore,
	router shared.CalendarRouter,
	mailer shared.Mailer,
	snapshots reconcile.SnapshotStore,
	clk clock.Clock,
	logger *slog.Logger,
) *reconcile.Service {
	return reconcile.NewService(calendars, router, mailer, snapshots, clk, cfg.Reconcile.Lookback, logger)
}
