package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/infra"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	collaborator = "stripe"

	// MetaProcessed is written on the PaymentIntent once the booking is settled.
	MetaProcessed   = "booking_processed"
	MetaProcessedAt = "booking_processed_at"
)

type StripeProcessor struct {
	api       *client.API
	cfg       config.StripeConfig
	publicURL string
	clock     clock.Clock
	logger    *slog.Logger
}

// NewStripeProcessor builds a processor against the live API. backends may be
// nil; tests pass a backend pointing at a local server.
func NewStripeProcessor(
	cfg config.StripeConfig,
	publicURL string,
	backends *stripe.Backends,
	clk clock.Clock,
	logger *slog.Logger,
) *StripeProcessor {
	var api *client.API
	if cfg.SecretKey != "" {
		api = client.New(cfg.SecretKey, backends)
	}
	return &StripeProcessor{
		api:       api,
		cfg:       cfg,
		publicURL: strings.TrimRight(publicURL, "/"),
		clock:     clk,
		logger:    logger,
	}
}

func (p *StripeProcessor) CreateCheckoutSession(ctx context.Context, b *booking.Booking) (shared.CheckoutSession, error) {
	if err := p.ready(); err != nil {
		return shared.CheckoutSession{}, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.publicURL + p.cfg.SuccessPath),
		CancelURL:         stripe.String(p.publicURL + p.cfg.CancelPath),
		CustomerEmail:     stripe.String(b.Student().Email),
		ClientReferenceID: stripe.String(b.Reference()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(p.cfg.Currency),
				UnitAmount: stripe.Int64(b.Price().Cents()),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("%s %s Tutoring Session", b.Size(), b.Subject())),
					Description: stripe.String(fmt.Sprintf("%s · %s · %s",
						b.Duration(), b.Format(), b.Start().Format("Mon 2 Jan 2006 15:04"))),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{booking.MetaReference: b.Reference()},
		},
	}
	params.Context = ctx
	for k, v := range b.ToMetadata() {
		params.AddMetadata(k, v)
	}

	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return shared.CheckoutSession{}, p.wrap("create checkout session", err)
	}
	return toCheckoutSession(s), nil
}

func (p *StripeProcessor) RetrieveSession(ctx context.Context, sessionID string) (shared.CheckoutSession, error) {
	if err := p.ready(); err != nil {
		return shared.CheckoutSession{}, err
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	s, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return shared.CheckoutSession{}, p.wrap("retrieve checkout session "+sessionID, err)
	}
	return toCheckoutSession(s), nil
}

// MarkProcessed writes the durable settled marker on the session's PaymentIntent.
func (p *StripeProcessor) MarkProcessed(ctx context.Context, s shared.CheckoutSession) error {
	if err := p.ready(); err != nil {
		return err
	}
	if s.PaymentIntentID == "" {
		return infra.WrapCollaboratorErr(p.logger, collaborator, infra.KindRejected,
			"checkout session "+s.ID+" has no payment intent", nil)
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddMetadata(MetaProcessed, "true")
	params.AddMetadata(MetaProcessedAt, p.clock.Now().UTC().Format(time.RFC3339))

	if _, err := p.api.PaymentIntents.Update(s.PaymentIntentID, params); err != nil {
		return p.wrap("mark payment intent "+s.PaymentIntentID+" processed", err)
	}
	return nil
}

// ParseWebhook verifies the Stripe-Signature header. An unset secret rejects everything.
func (p *StripeProcessor) ParseWebhook(payload []byte, signature string) (shared.WebhookEvent, error) {
	if p.cfg.WebhookSecret == "" {
		return shared.WebhookEvent{}, infra.WrapCollaboratorErr(p.logger, collaborator, infra.KindNotConfigured,
			"webhook secret is not set", nil)
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, p.cfg.WebhookSecret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return shared.WebhookEvent{}, errs.Mark(errs.Wrap(err, "verify stripe signature"), errs.ErrInvalidSignature)
	}

	out := shared.WebhookEvent{ID: ev.ID, Type: string(ev.Type)}
	if strings.HasPrefix(out.Type, "checkout.session.") && ev.Data != nil {
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &cs); err != nil {
			return shared.WebhookEvent{}, errs.Mark(errs.Wrap(err, "decode checkout session"), errs.ErrValidation)
		}
		out.SessionID = cs.ID
	}
	return out, nil
}

func (p *StripeProcessor) Status() shared.CollaboratorStatus {
	return shared.CollaboratorStatus{
		Name:       collaborator,
		Configured: p.api != nil && p.cfg.WebhookSecret != "",
		CheckedAt:  p.clock.Now(),
	}
}

func (p *StripeProcessor) ready() error {
	if p.api == nil {
		return infra.WrapCollaboratorErr(p.logger, collaborator, infra.KindNotConfigured, "stripe secret key is not set", nil)
	}
	return nil
}

func (p *StripeProcessor) wrap(msg string, err error) error {
	kind := infra.KindUnavailable
	var se *stripe.Error
	if errors.As(err, &se) {
		switch {
		case se.HTTPStatusCode == 404:
			kind = infra.KindNotFound
		case se.HTTPStatusCode >= 400 && se.HTTPStatusCode < 500 && se.HTTPStatusCode != 429:
			kind = infra.KindRejected
		}
	}
	wrapped := infra.WrapCollaboratorErr(p.logger, collaborator, kind, msg, err)
	if kind == infra.KindNotFound {
		return errs.Mark(wrapped, errs.ErrSessionMissing)
	}
	return wrapped
}

func toCheckoutSession(s *stripe.CheckoutSession) shared.CheckoutSession {
	out := shared.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
		Processed:     s.Metadata[MetaProcessed] == "true",
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if pi := s.PaymentIntent; pi != nil {
		out.PaymentIntentID = pi.ID
		if pi.Metadata[MetaProcessed] == "true" {
			out.Processed = true
		}
	}
	return out
}
