//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"tutor-booking/internal/handler/api"
	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/handler/middleware"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/pkg/jwt"
	"tutor-booking/internal/usecase/queries"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"
	"tutor-booking/tests/common/authtest"
	"tutor-booking/tests/common/httptest"
	commandsmock "tutor-booking/tests/mock/commands"
	queriesmock "tutor-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockAdminQueries
	mockHealth   *queriesmock.MockHealthQueries
	jwt          *authtest.JWTHelper
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockHealth = queriesmock.NewMockHealthQueries(s.mockCtrl)
	s.jwt = authtest.NewJWTHelper(config.NewTestConfig().Admin)

	auth := middleware.NewAuthMiddleware(s.jwt.Service())
	h := api.NewAdminHandler(s.mockCommands, s.mockQueries)
	admin := s.router.Group("/api/admin", auth.RequireAdmin())
	admin.POST("/reconcile", h.Reconcile)
	admin.GET("/locks", h.Locks)
	admin.POST("/locks/sweep", h.SweepLocks)
	admin.GET("/snapshots", h.Snapshots)

	s.router.GET("/api/health", api.NewHealthHandler(s.mockHealth).Check)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) adminToken() string {
	return s.jwt.GenerateToken(s.T(), "ops@tutorly.example", jwt.RoleAdmin)
}

func (s *AdminHandlerTestSuite) TestAuth() {
	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/locks", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "token required")
	})

	s.Run("error: 401 with a token signed by another secret", func() {
		other := authtest.NewJWTHelper(config.AdminConfig{JWTSecret: "other", TokenTTL: time.Hour})
		token := other.GenerateToken(s.T(), "ops@tutorly.example", jwt.RoleAdmin)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/locks", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid token")
	})

	s.Run("error: 401 with an expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), "ops@tutorly.example")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/locks", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token expired")
	})

	s.Run("error: 403 for a non-admin role", func() {
		token := s.jwt.GenerateToken(s.T(), "tutor@tutorly.example", "tutor")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/locks", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 503 when no signing secret is configured", func() {
		router := gin.New()
		auth := middleware.NewAuthMiddleware(jwt.NewService("", time.Hour))
		router.GET("/api/admin/locks", auth.RequireAdmin(), api.NewAdminHandler(s.mockCommands, s.mockQueries).Locks)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/admin/locks", nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "disabled")
	})
}

func (s *AdminHandlerTestSuite) TestReconcile() {
	s.mockCommands.EXPECT().RunReconcile(gomock.Any()).
		Return(reconcile.CycleReport{Calendars: 2, Events: 5, Assigned: 1}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/reconcile", nil, s.adminToken())

	var body reconcile.CycleReport
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(reconcile.CycleReport{Calendars: 2, Events: 5, Assigned: 1}, body)
}

func (s *AdminHandlerTestSuite) TestLocks() {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s.Run("list", func() {
		s.mockQueries.EXPECT().Locks().Return([]settlement.LockInfo{
			{Key: "cs_123", AcquiredAt: at, Age: 90 * time.Second},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/locks", nil, s.adminToken())

		var body []resdto.LockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("cs_123", body[0].Key)
		s.Equal(int64(90), body[0].AgeSeconds)
	})

	s.Run("sweep with nothing stale returns an empty list", func() {
		s.mockCommands.EXPECT().SweepLocks().Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/locks/sweep", nil, s.adminToken())
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"released":[]}`, rec.Body.String())
	})
}

func (s *AdminHandlerTestSuite) TestSnapshots() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Snapshots(gomock.Any()).Return([]reconcile.Snapshot{
			{EventID: "evt_1", Calendar: "econ"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/snapshots", nil, s.adminToken())

		var body []resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal([]string{}, body[0].Attendees)
	})

	s.Run("error: store failure", func() {
		s.mockQueries.EXPECT().Snapshots(gomock.Any()).
			Return(nil, errs.Mark(errors.New("db down"), errs.ErrCollaborator)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/snapshots", nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}

func (s *AdminHandlerTestSuite) TestHealth() {
	s.mockHealth.EXPECT().Check().Return(queries.HealthReport{
		Status:    "degraded",
		Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Collaborators: []shared.CollaboratorStatus{
			{Name: "google-calendar", Configured: true},
			{Name: "stripe", Configured: false},
		},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/health", nil, "")

	var body resdto.HealthResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("degraded", body.Status)
	s.Len(body.Collaborators, 2)
	s.False(body.Collaborators[1].Configured)
}
