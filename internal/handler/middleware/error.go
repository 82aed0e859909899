package middleware

import (
	"log/slog"
	"net/http"

	"tutor-booking/internal/handler/httperr"
	"tutor-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error a handler recorded. Private
// errors left without a response are classified through the errs markers.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		last := c.Errors.Last().Err
		status, msg := httperr.Classify(last)
		attrs := []any{"request_id", GetRequestID(c), "status", status, "error", last.Error()}
		if status >= http.StatusInternalServerError {
			attrs = append(attrs, "stack", errs.ExtractStackLines(last, 12))
		}
		slog.ErrorContext(c.Request.Context(), "unhandled request error", attrs...)

		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
