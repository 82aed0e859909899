//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AdminConfig
}

func NewJWTHelper(cfg config.AdminConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.JWTSecret, h.cfg.TokenTTL)
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := h.Service().GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, time.Millisecond)
	token, err := service.GenerateToken(subject, jwt.RoleAdmin)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
