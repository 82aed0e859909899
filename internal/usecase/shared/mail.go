package shared

import (
	"context"
	"log/slog"
)

// MailResult records a best-effort notification. Callers log it and never branch on it.
type MailResult struct {
	Kind string
	To   string
	Err  error
}

func (r MailResult) Sent() bool {
	return r.Err == nil
}

// Deliver runs send and logs the outcome.
func Deliver(ctx context.Context, logger *slog.Logger, kind, to string, send func(context.Context) error) MailResult {
	res := MailResult{Kind: kind, To: to, Err: send(ctx)}
	if res.Err != nil {
		logger.WarnContext(ctx, "notification not sent",
			slog.String("kind", kind),
			slog.String("to", to),
			slog.String("error", res.Err.Error()))
	} else {
		logger.InfoContext(ctx, "notification sent",
			slog.String("kind", kind),
			slog.String("to", to))
	}
	return res
}
