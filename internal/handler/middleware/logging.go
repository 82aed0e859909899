package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/obs"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}

// LoggingMiddleware opens a request span and logs start and completion.
// Health probes are logged at debug level.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = l.generateRequestID()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := obs.Tracer().Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("request_id", requestID),
			))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if sc := span.SpanContext(); sc.IsValid() {
			logAttrs = append(logAttrs, slog.String("trace_id", sc.TraceID().String()))
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			logAttrs = append(logAttrs, slog.String("idempotency_key", key))
		}
		if sessionID := c.Query("session_id"); sessionID != "" {
			logAttrs = append(logAttrs, slog.String("session_id", sessionID))
		} else if sessionID := c.Param("id"); sessionID != "" {
			logAttrs = append(logAttrs, slog.String("session_id", sessionID))
		}
		if c.GetHeader("Stripe-Signature") != "" {
			logAttrs = append(logAttrs, slog.Bool("signed", true))
		}

		quiet := strings.HasSuffix(route, "/health")
		startLevel := slog.LevelInfo
		if quiet {
			startLevel = slog.LevelDebug
		}
		l.logger.LogAttrs(ctx, startLevel, "Request started", logAttrs...)

		c.Next()

		// The subject is only known once the admin guard has run.
		if subject, ok := GetSubject(c); ok {
			logAttrs = append(logAttrs, slog.String("subject", subject), slog.String("role", c.GetString(ctxRoleKey)))
		}

		statusCode := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))

		responseAttrs := append(logAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if responseSize := c.Writer.Size(); responseSize > 0 {
			responseAttrs = append(responseAttrs, slog.Int("response_size", responseSize))
		}
		if len(c.Errors) > 0 {
			responseAttrs = append(responseAttrs, slog.String("errors", c.Errors.String()))
		}

		logLevel := slog.LevelInfo
		switch {
		case statusCode >= 500:
			logLevel = slog.LevelError
			span.SetStatus(codes.Error, fmt.Sprintf("server error %d", statusCode))
		case statusCode >= 400:
			logLevel = slog.LevelWarn
		case quiet:
			logLevel = slog.LevelDebug
		}

		l.logger.LogAttrs(ctx, logLevel, "Request completed", responseAttrs...)
	}
}

func NewLogger(cfg config.LogConfig) *Logger {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	timezone, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		timezone = time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(slog.String("service", "tutor-booking"))
	slog.SetDefault(logger)

	return &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: timezone,
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func GetRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}

func (l *Logger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
