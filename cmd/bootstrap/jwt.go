package bootstrap

import (
	"tutor-booking/internal/handler/middleware"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

// NewJWTService issues admin tokens. An empty ADMIN_JWT_SECRET disables the admin API.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
}
