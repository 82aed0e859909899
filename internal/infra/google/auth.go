package google

import (
	"context"
	"errors"
	"log/slog"

	"tutor-booking/internal/infra"
	"tutor-booking/internal/pkg/config"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ServiceAccountOption authenticates as the configured service account.
// It returns nil when no credentials are configured.
func ServiceAccountOption(ctx context.Context, cfg config.GoogleConfig, scopes ...string) option.ClientOption {
	if !cfg.Configured() {
		return nil
	}
	jc := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: cfg.PEMKey(),
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}
	return option.WithHTTPClient(jc.Client(ctx))
}

// NewCalendarService returns nil when credentials are missing.
func NewCalendarService(ctx context.Context, cfg config.GoogleConfig) (*calendar.Service, error) {
	opt := ServiceAccountOption(ctx, cfg, calendar.CalendarScope)
	if opt == nil {
		return nil, nil
	}
	return calendar.NewService(ctx, opt)
}

// NewSheetsService returns nil when credentials are missing.
func NewSheetsService(ctx context.Context, cfg config.GoogleConfig) (*sheets.Service, error) {
	opt := ServiceAccountOption(ctx, cfg, sheets.SpreadsheetsScope)
	if opt == nil {
		return nil, nil
	}
	return sheets.NewService(ctx, opt)
}

func wrapAPIErr(logger *slog.Logger, collaborator, msg string, err error) error {
	kind := infra.KindUnavailable
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 404:
			kind = infra.KindNotFound
		case apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != 429:
			kind = infra.KindRejected
		}
	}
	return infra.WrapCollaboratorErr(logger, collaborator, kind, msg, err)
}
