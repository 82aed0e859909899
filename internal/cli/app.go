package cli

import (
	"context"

	"tutor-booking/cmd/bootstrap"
	"tutor-booking/cmd/bootstrap/components"
	"tutor-booking/internal/pkg/clock"

	"go.uber.org/fx"
)

// withApp builds the collaborator and use case graph without the HTTP server
// or background workers, fills targets and runs fn between start and stop.
func withApp(ctx context.Context, opts *RootOptions, fn func(context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			opts.LoadConfig,
			bootstrap.NewLocation,
			clock.NewRealClock,
		),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		components.CollaboratorModule,
		components.RepositoryModule,
		components.UseCaseModule,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	runErr := fn(ctx)
	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return err
	}
	return runErr
}
