package bootstrap

import (
	"time"

	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		clock.NewRealClock,
	),
)

// NewLocation resolves the zone session dates and times are interpreted in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Settlement.Location()
}
