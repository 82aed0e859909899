package components

import (
	"context"
	"log/slog"
	"time"

	"tutor-booking/internal/infra/directory"
	"tutor-booking/internal/infra/google"
	"tutor-booking/internal/infra/mailer"
	"tutor-booking/internal/infra/mq"
	"tutor-booking/internal/infra/payment"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/usecase/notify"
	"tutor-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CollaboratorModule = fx.Module("collaborator",
	fx.Provide(
		fx.Annotate(
			NewDirectory,
			fx.As(fx.Self()),
			fx.As(new(shared.CalendarRouter)),
			fx.As(new(shared.TutorDirectory)),
		),
		fx.Annotate(
			NewCalendarStore,
			fx.As(fx.Self()),
			fx.As(new(shared.CalendarStore)),
		),
		fx.Annotate(
			NewLedgerStore,
			fx.As(fx.Self()),
			fx.As(new(shared.LedgerStore)),
		),
		fx.Annotate(
			NewPaymentProcessor,
			fx.As(fx.Self()),
			fx.As(new(shared.PaymentProcessor)),
		),
		fx.Annotate(
			NewMailer,
			fx.As(fx.Self()),
			fx.As(new(shared.Mailer)),
		),
		NewEventPublisher,
		NewProbes,
	),
)

func NewDirectory(cfg config.Config) (*directory.Directory, error) {
	return directory.Load(cfg.Directory.Path, cfg.Google.DefaultCalendarID)
}

func NewCalendarStore(cfg config.Config, logger *slog.Logger) (*google.CalendarStore, error) {
	svc, err := google.NewCalendarService(context.Background(), cfg.Google)
	if err != nil {
		return nil, err
	}
	return google.NewCalendarStore(svc, logger), nil
}

func NewLedgerStore(cfg config.Config, clk clock.Clock, loc *time.Location, logger *slog.Logger) (*google.LedgerStore, error) {
	svc, err := google.NewSheetsService(context.Background(), cfg.Google)
	if err != nil {
		return nil, err
	}
	return google.NewLedgerStore(svc, cfg.Google.SpreadsheetID, cfg.Google.SheetName, clk, loc, logger), nil
}

func NewPaymentProcessor(cfg config.Config, clk clock.Clock, logger *slog.Logger) *payment.StripeProcessor {
	return payment.NewStripeProcessor(cfg.Stripe, cfg.Server.PublicURL, nil, clk, logger)
}

func NewMailer(cfg config.Config, clk clock.Clock, loc *time.Location, logger *slog.Logger) (*mailer.SMTPMailer, error) {
	client, err := mailer.NewSMTPClient(cfg.Mail)
	if err != nil {
		return nil, err
	}
	renderer, err := mailer.NewRenderer(loc)
	if err != nil {
		return nil, err
	}
	var sender mailer.Sender
	if client != nil {
		sender = client
	}
	return mailer.NewSMTPMailer(sender, renderer, cfg.Mail, clk, logger), nil
}

// NewEventPublisher publishes settled openings to RabbitMQ when RABBIT_URL is set
// and falls back to an in-process fan-out otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, fanout *notify.FanOut, logger *slog.Logger) (shared.EventPublisher, error) {
	if !cfg.MQ.Enabled() {
		p := notify.NewInProcessPublisher(fanout)
		lc.Append(fx.StopHook(p.Wait))
		return p, nil
	}
	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(pub.Close))
	return pub, nil
}

type ProbeParams struct {
	fx.In

	Directory *directory.Directory
	Calendar  *google.CalendarStore
	Ledger    *google.LedgerStore
	Payments  *payment.StripeProcessor
	Mailer    *mailer.SMTPMailer
	Publisher shared.EventPublisher
}

func NewProbes(p ProbeParams) []shared.Probe {
	probes := []shared.Probe{p.Directory, p.Calendar, p.Ledger, p.Payments, p.Mailer}
	if pr, ok := p.Publisher.(shared.Probe); ok {
		probes = append(probes, pr)
	}
	return probes
}
