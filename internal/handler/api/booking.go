package api

import (
	"errors"
	"net/http"

	reqdto "tutor-booking/internal/handler/dto/request"
	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/handler/httperr"
	"tutor-booking/internal/usecase/commands"
	"tutor-booking/internal/usecase/queries"
	"tutor-booking/internal/usecase/settlement"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Submit booking
// @Description Book a session without online payment. Retries with the same Idempotency-Key are no-ops.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Already processed or processing"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", bindingDetail(err))
		return
	}
	res, err := h.cmds.SubmitBooking(c.Request.Context(), req, c.GetHeader("Idempotency-Key"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(settlementStatus(res), resdto.FromSettlement(res))
}

// @Summary Price quote
// @Description Price for a class size and duration. Unknown values fall back to Solo and 1 hour.
// @Tags bookings
// @Produce json
// @Param classSize query string false "Solo, Duo, Trio or Quadrio"
// @Param duration query string false "1 hour, 1.5 hours, 2 hours or 2.5 hours"
// @Success 200 {object} resdto.PriceResponse
// @Router /api/price [get]
func (h *BookingHandler) Price(c *gin.Context) {
	var q reqdto.PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	quote := h.q.QuotePrice(q.ClassSize, q.Duration)
	c.JSON(http.StatusOK, resdto.FromQuote(quote.Size, quote.Duration, quote.Price))
}

func settlementStatus(res *settlement.Result) int {
	if res.Outcome == settlement.OutcomeCreated {
		return http.StatusCreated
	}
	return http.StatusOK
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func bindingDetail(err error) any {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]fieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, fieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
