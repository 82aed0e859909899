package middleware

import (
	"log/slog"
	"slices"

	"tutor-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware opens the booking API to the configured front-end origins.
// A single "*" origin allows every origin without credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     slices.Clone(cfg.AllowHeaders),
		ExposeHeaders:    slices.Clone(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if !slices.Contains(corsCfg.AllowHeaders, "Idempotency-Key") {
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Idempotency-Key")
	}
	if !slices.Contains(corsCfg.ExposeHeaders, requestIDHeader) {
		corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, requestIDHeader)
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
