package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tutor-booking/internal/handler/httperr"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	Enabled() bool
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxSubjectKey = "subject"
	ctxRoleKey    = "role"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin guards operator endpoints. Without a signing secret the admin
// surface is closed.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.tokenValidator.Enabled() {
			httperr.AbortWithError(c, http.StatusServiceUnavailable,
				errs.Mark(jwt.ErrDisabled, errs.ErrConfiguration), "Admin API is disabled", nil)
			return
		}

		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "Token expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		if claims.Role != jwt.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, jwt.ErrInvalidToken, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
