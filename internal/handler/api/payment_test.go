//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tutor-booking/internal/handler/api"
	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/handler/middleware"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/commands"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"
	"tutor-booking/tests/common/builder"
	"tutor-booking/tests/common/httptest"
	commandsmock "tutor-booking/tests/mock/commands"
	queriesmock "tutor-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *PaymentHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterBookingValidators())
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	h := api.NewPaymentHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/api/checkout-sessions", h.CreateCheckout)
	s.router.POST("/api/checkout-sessions/:id/confirm", h.Confirm)
	s.router.GET("/api/verify-session", h.Verify)
	s.router.POST("/api/webhooks/stripe", h.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateCheckout() {
	reqBody := builder.NewBookingBuilder().BuildDTO()

	s.Run("success: 201 with the hosted page url", func() {
		b := builder.NewBookingBuilder().MustBuildDomain()
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{SessionID: "cs_123", URL: "https://checkout.example/cs_123", Booking: b}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout-sessions", reqBody, "")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("cs_123", body.SessionID)
		s.Equal("https://checkout.example/cs_123", body.URL)
		s.Equal(b.Reference(), body.BookingRef)
	})

	s.Run("error: 503 when the payment provider is not configured", func() {
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("stripe secret key is not set"), errs.ErrConfiguration)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout-sessions", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "not configured")
	})
}

func (s *PaymentHandlerTestSuite) TestConfirm() {
	s.Run("success: concurrent confirm reports already_processing", func() {
		s.mockCommands.EXPECT().ConfirmCheckout(gomock.Any(), "cs_123").
			Return(&settlement.Result{Outcome: settlement.OutcomeAlreadyProcessing}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout-sessions/cs_123/confirm", nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("already_processing", body.Status)
	})

	s.Run("error: 402 when the session is unpaid", func() {
		s.mockCommands.EXPECT().ConfirmCheckout(gomock.Any(), "cs_unpaid").
			Return(nil, errs.Wrap(errs.ErrPaymentNotCompleted, "settle cs_unpaid")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout-sessions/cs_unpaid/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "payment not completed")
	})
}

func (s *PaymentHandlerTestSuite) TestVerify() {
	s.mockQueries.EXPECT().VerifySession(gomock.Any(), "cs_123").Return(&shared.CheckoutSession{
		ID:            "cs_123",
		PaymentStatus: shared.PaymentStatusPaid,
		AmountTotal:   2500,
		Currency:      "eur",
		Processed:     true,
		Metadata:      map[string]string{"booking_ref": "REF-ABC123"},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/verify-session?session_id=cs_123", nil, "")

	var body resdto.SessionStatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("cs_123", body.SessionID)
	s.True(body.Paid)
	s.True(body.Processed)
	s.Equal(int64(2500), body.AmountTotal)
	s.Equal("REF-ABC123", body.BookingRef)
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	headers := map[string]string{"Stripe-Signature": "t=1,v1=abc", "Content-Type": "application/json"}

	s.Run("success: raw payload and signature reach the command", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").
			Return(&commands.WebhookResult{
				EventType:  shared.WebhookCheckoutCompleted,
				Handled:    true,
				Settlement: &settlement.Result{Outcome: settlement.OutcomeCreated},
			}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/webhooks/stripe", payload, headers)

		var body resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Received)
		s.Equal("created", body.Status)
	})

	s.Run("error: 400 on a bad signature so nothing is settled", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("signature mismatch"), errs.ErrInvalidSignature)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/webhooks/stripe", payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "signature")
	})

	s.Run("error: 502 on collaborator failure so the provider retries", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("calendar down"), errs.ErrCollaborator)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/webhooks/stripe", payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}
