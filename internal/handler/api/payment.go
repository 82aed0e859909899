package api

import (
	"io"
	"net/http"

	reqdto "tutor-booking/internal/handler/dto/request"
	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/handler/httperr"
	"tutor-booking/internal/usecase/commands"
	"tutor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewPaymentHandler(cmds commands.BookingCommands, q queries.BookingQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create checkout session
// @Description Validate and price a booking, then open a hosted payment page.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout-sessions [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", bindingDetail(err))
		return
	}
	res, err := h.cmds.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckout(res))
}

// @Summary Confirm checkout session
// @Description Settle a paid checkout session after the payment redirect.
// @Tags payments
// @Produce json
// @Param id path string true "Checkout session ID"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Already processed or processing"
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/checkout-sessions/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	res, err := h.cmds.ConfirmCheckout(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(settlementStatus(res), resdto.FromSettlement(res))
}

// @Summary Verify checkout session
// @Tags payments
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.SessionStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/verify-session [get]
func (h *PaymentHandler) Verify(c *gin.Context) {
	sess, err := h.q.VerifySession(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromCheckoutSession(sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Payment webhook
// @Description Signed provider notification. Anything but a 2xx makes the provider retry.
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	res, err := h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out := resdto.WebhookResponse{Received: true, Type: res.EventType}
	if res.Settlement != nil {
		out.Status = string(res.Settlement.Outcome)
	}
	c.JSON(http.StatusOK, out)
}
