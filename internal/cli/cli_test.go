//go:build unit

package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tutor-booking/internal/cli"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	opts := &cli.RootOptions{LoadConfig: func() (config.Config, error) { return cfg, nil }}
	cmd := cli.NewRootCommandWithOptions(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type priceLine struct {
	ClassSize string `json:"classSize"`
	Duration  string `json:"duration"`
	Total     string `json:"total"`
	PerPerson string `json:"perPerson"`
}

func TestPriceCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want priceLine
	}{
		{
			name: "duo ninety minutes",
			args: []string{"--size", "Duo", "--duration", "1.5 hours"},
			want: priceLine{ClassSize: "Duo", Duration: "1.5 hours", Total: "60.00", PerPerson: "30.00"},
		},
		{
			name: "quadrio two and a half hours",
			args: []string{"--size", "Quadrio", "--duration", "2.5 hours"},
			want: priceLine{ClassSize: "Quadrio", Duration: "2.5 hours", Total: "125.00", PerPerson: "31.25"},
		},
		{
			name: "unknown inputs fall back to one hour solo",
			args: []string{"--size", "Octet", "--duration", "3 hours"},
			want: priceLine{ClassSize: "Solo", Duration: "1 hour", Total: "25.00", PerPerson: "25.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, config.NewTestConfig(), append([]string{"price", "--format", "json"}, tt.args...)...)
			require.NoError(t, err)

			var got []priceLine
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestPriceCommand_AllText(t *testing.T) {
	out, err := run(t, config.NewTestConfig(), "price", "--all")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 17)
	assert.Contains(t, lines[0], "PER PERSON")
	assert.Contains(t, out, "Trio")
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := run(t, config.NewTestConfig(), "price", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestTokenCommand(t *testing.T) {
	cfg := config.NewTestConfig()

	out, err := run(t, cfg, "token", "--subject", "ops@example.com")
	require.NoError(t, err)

	svc := jwt.NewService(cfg.Admin.JWTSecret, time.Hour)
	claims, err := svc.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, "ops@example.com", claims.Subject)
}

func TestTokenCommand_Disabled(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Admin.JWTSecret = ""

	_, err := run(t, cfg, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_JWT_SECRET")
}
