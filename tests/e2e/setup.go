//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tutor-booking/cmd/bootstrap"
	"tutor-booking/cmd/bootstrap/components"
	"tutor-booking/internal/infra/repository"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	pool := dbtest.NewPool(t)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, repository.Migrate(ctx, pool, slog.Default()), "failed to migrate test database")

	router, cfg, app := buildE2EApp(t, pool)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return pool, router, cfg
}

// ------------------------------------------------------------
// Builds the HTTP graph without background workers. No collaborator
// credentials are set, so every external adapter fails closed.
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, pool *pgxpool.Pool) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			config.NewTestConfig,
			bootstrap.NewLocation,
			clock.NewRealClock,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.CollaboratorModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not built")

	return router, cfg, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.DB, s.Router, s.Config = setupE2EEnvironment(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	_, err := s.DB.Exec(s.T().Context(), "TRUNCATE processed_markers, reconcile_snapshots")
	require.NoError(s.T(), err, "failed to reset database state")
}
