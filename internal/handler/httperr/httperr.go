package httperr

import (
	"net/http"

	"tutor-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error to its HTTP status through the errs markers.
// Client errors echo the error text; server errors get a fixed message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid booking request"
	case errs.Is(err, errs.ErrSchedulingConstraint):
		return http.StatusUnprocessableEntity, "Bookings must be made at least 24 hours in advance"
	case errs.Is(err, errs.ErrInvalidSignature):
		return http.StatusBadRequest, "Invalid webhook signature"
	case errs.Is(err, errs.ErrPaymentNotCompleted):
		return http.StatusPaymentRequired, "Payment not completed"
	case errs.Is(err, errs.ErrSessionMissing):
		return http.StatusNotFound, "Checkout session not found"
	case errs.Is(err, errs.ErrConfiguration):
		return http.StatusServiceUnavailable, "Service is not configured"
	case errs.Is(err, errs.ErrCollaborator):
		return http.StatusBadGateway, "An upstream service failed, please try again later"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
