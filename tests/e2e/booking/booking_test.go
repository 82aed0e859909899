//go:build e2e

package booking_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/pkg/jwt"
	"tutor-booking/tests/common/authtest"
	"tutor-booking/tests/common/builder"
	"tutor-booking/tests/common/httptest"
	"tutor-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.Admin)
}

func (s *bookingSuite) TestHealth() {
	s.Run("reports every unconfigured collaborator", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/health", nil, "")

		var body resdto.HealthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("degraded", body.Status)

		configured := map[string]bool{}
		for _, c := range body.Collaborators {
			configured[c.Name] = c.Configured
		}
		s.Contains(configured, "stripe")
		s.Contains(configured, "smtp")
		s.False(configured["stripe"])
	})
}

func (s *bookingSuite) TestPrice() {
	s.Run("trio for two hours", func() {
		q := url.Values{"classSize": {"Trio"}, "duration": {"2 hours"}}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/price?"+q.Encode(), nil, "")

		var body resdto.PriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("90.00", body.Price)
		s.Equal("30.00", body.PerPerson)
	})
}

func (s *bookingSuite) TestSubmitWithoutCollaborators() {
	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.PreferredDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	}).BuildDTO()
	headers := map[string]string{"Idempotency-Key": "e2e-direct-1"}

	s.Run("first submission fails closed, the retry is a no-op", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", req, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")

		var n int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM processed_markers WHERE key = $1", "e2e-direct-1").Scan(&n)
		require.NoError(s.T(), err)
		s.Equal(1, n)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", req, headers)
		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("already_processed", body.Status)
	})

	s.Run("sessions inside the lead time are rejected", func() {
		late := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.PreferredDate = time.Now().Format("2006-01-02")
		}).BuildDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", late, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "24 hours")
	})
}

func (s *bookingSuite) TestAdmin() {
	token := s.jwt.GenerateToken(s.T(), "ops@example.com", jwt.RoleAdmin)

	s.Run("snapshots start empty", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/snapshots", nil, token)

		var body []resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("locks require a token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/locks", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "token required")
	})
}
