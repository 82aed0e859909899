package commands

import (
	"context"
	"log/slog"

	"tutor-booking/internal/domain/booking"
	reqdto "tutor-booking/internal/handler/dto/request"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

// Settler is the settlement entry point used by intake commands.
type Settler interface {
	Settle(ctx context.Context, req settlement.Request) (*settlement.Result, error)
}

type CheckoutResult struct {
	SessionID string
	URL       string
	Booking   *booking.Booking
}

type WebhookResult struct {
	EventType  string
	Handled    bool
	Settlement *settlement.Result
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, req reqdto.CreateBookingRequest, idempotencyKey string) (*settlement.Result, error)
	CreateCheckout(ctx context.Context, req reqdto.CreateBookingRequest) (*CheckoutResult, error)
	ConfirmCheckout(ctx context.Context, sessionID string) (*settlement.Result, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

type bookingCommandsImpl struct {
	factory  *booking.Factory
	settler  Settler
	payments shared.PaymentProcessor
	logger   *slog.Logger
}

func NewBookingCommands(
	factory *booking.Factory,
	settler Settler,
	payments shared.PaymentProcessor,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		factory:  factory,
		settler:  settler,
		payments: payments,
		logger:   logger,
	}
}

// SubmitBooking settles a booking that skips payment. An empty key gets a fresh one.
func (c *bookingCommandsImpl) SubmitBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	idempotencyKey string,
) (*settlement.Result, error) {
	b, err := c.buildBooking(req)
	if err != nil {
		return nil, err
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}
	return c.settler.Settle(ctx, settlement.Request{
		Key:     idempotencyKey,
		Source:  settlement.SourceDirect,
		Booking: b,
	})
}

func (c *bookingCommandsImpl) CreateCheckout(ctx context.Context, req reqdto.CreateBookingRequest) (*CheckoutResult, error) {
	b, err := c.buildBooking(req)
	if err != nil {
		return nil, err
	}
	sess, err := c.payments.CreateCheckoutSession(ctx, b)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "checkout session created",
		slog.String("session_id", sess.ID),
		slog.String("booking_ref", b.Reference()),
		slog.Int64("amount_cents", b.Price().Cents()))
	return &CheckoutResult{SessionID: sess.ID, URL: sess.URL, Booking: b}, nil
}

// ConfirmCheckout is the client-driven settlement path after the payment redirect.
func (c *bookingCommandsImpl) ConfirmCheckout(ctx context.Context, sessionID string) (*settlement.Result, error) {
	if sessionID == "" {
		return nil, errs.Mark(errs.New("session id is required"), errs.ErrValidation)
	}
	return c.settler.Settle(ctx, settlement.Request{Key: sessionID, Source: settlement.SourceCheckout})
}

func (c *bookingCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	ev, err := c.payments.ParseWebhook(payload, signature)
	if err != nil {
		return nil, err
	}

	switch ev.Type {
	case shared.WebhookCheckoutCompleted, shared.WebhookAsyncPaymentSucceeded:
	default:
		c.logger.DebugContext(ctx, "ignoring webhook event", slog.String("type", ev.Type), slog.String("id", ev.ID))
		return &WebhookResult{EventType: ev.Type}, nil
	}

	res, err := c.settler.Settle(ctx, settlement.Request{Key: ev.SessionID, Source: settlement.SourceCheckout})
	if err != nil {
		// Delayed payment methods complete the session before funds arrive; the
		// async_payment_succeeded event settles it later.
		if errs.Is(err, errs.ErrPaymentNotCompleted) {
			c.logger.InfoContext(ctx, "checkout completed without payment yet",
				slog.String("session_id", ev.SessionID))
			return &WebhookResult{EventType: ev.Type}, nil
		}
		return nil, err
	}
	if noop := res.Outcome.Err(); noop != nil {
		c.logger.InfoContext(ctx, "webhook settlement skipped",
			slog.String("session_id", ev.SessionID),
			slog.String("reason", noop.Error()))
	}
	return &WebhookResult{EventType: ev.Type, Handled: true, Settlement: res}, nil
}

func (c *bookingCommandsImpl) buildBooking(req reqdto.CreateBookingRequest) (*booking.Booking, error) {
	draft, err := req.ToDraft()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	b, err := c.factory.Create(draft)
	if err != nil {
		if errs.Is(err, booking.ErrLeadTimeNotMet) {
			return nil, errs.Mark(err, errs.ErrSchedulingConstraint)
		}
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return b, nil
}
