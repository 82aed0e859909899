package cli

import (
	"fmt"
	"io"
	"time"

	"tutor-booking/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

type tokenOutput struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin API token",
		Long: `Issue a bearer token for the /api/admin endpoints, signed with
ADMIN_JWT_SECRET and valid for ADMIN_TOKEN_TTL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.LoadConfig()
			if err != nil {
				return err
			}
			svc := jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
			if !svc.Enabled() {
				return fmt.Errorf("ADMIN_JWT_SECRET is not set")
			}
			token, err := svc.GenerateToken(subject, jwt.RoleAdmin)
			if err != nil {
				return err
			}
			out := tokenOutput{
				Token:     token,
				Subject:   subject,
				ExpiresAt: time.Now().Add(cfg.Admin.TokenTTL).UTC().Truncate(time.Second),
			}
			return write(cmd.OutOrStdout(), rootOpts.Format, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Token)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")

	return cmd
}
