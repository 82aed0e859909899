package bootstrap

import (
	"context"
	"log/slog"

	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/obs"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(InitTracing),
)

func InitTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := obs.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.Endpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
