package bootstrap

import (
	"log/slog"

	"tutor-booking/internal/handler/middleware"
	"tutor-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
