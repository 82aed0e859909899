package settlement

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/pkg/obs"
	"tutor-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Source string

const (
	SourceCheckout Source = "checkout"
	SourceDirect   Source = "direct"
)

type Outcome string

const (
	OutcomeCreated           Outcome = "created"
	OutcomeAlreadyProcessed  Outcome = "already_processed"
	OutcomeAlreadyProcessing Outcome = "already_processing"
)

// Err maps the no-op outcomes onto their sentinel markers.
func (o Outcome) Err() error {
	switch o {
	case OutcomeAlreadyProcessed:
		return errs.ErrAlreadyProcessed
	case OutcomeAlreadyProcessing:
		return errs.ErrAlreadyProcessing
	default:
		return nil
	}
}

// Request identifies one settlement attempt. For checkout settlements Key is the
// checkout session id and Booking may be nil, in which case it is rebuilt from
// the session metadata.
type Request struct {
	Key     string
	Source  Source
	Booking *booking.Booking
}

type Result struct {
	Outcome       Outcome
	Booking       *booking.Booking
	Event         *session.Event
	LedgerRow     *shared.LedgerRow
	Notifications []shared.MailResult
}

type Service struct {
	locks     *LockStore
	markers   shared.ProcessedMarkers
	payments  shared.PaymentProcessor
	ledger    shared.LedgerStore
	calendar  shared.CalendarStore
	router    shared.CalendarRouter
	mailer    shared.Mailer
	publisher shared.EventPublisher
	loc       *time.Location
	logger    *slog.Logger
}

func NewService(
	locks *LockStore,
	markers shared.ProcessedMarkers,
	payments shared.PaymentProcessor,
	ledger shared.LedgerStore,
	calendar shared.CalendarStore,
	router shared.CalendarRouter,
	mailer shared.Mailer,
	publisher shared.EventPublisher,
	loc *time.Location,
	logger *slog.Logger,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		locks:     locks,
		markers:   markers,
		payments:  payments,
		ledger:    ledger,
		calendar:  calendar,
		router:    router,
		mailer:    mailer,
		publisher: publisher,
		loc:       loc,
		logger:    logger,
	}
}

// Settle writes a booking to the ledger and the calendar at most once per key.
// Concurrent and repeated calls with the same key return a no-op outcome.
func (s *Service) Settle(ctx context.Context, req Request) (*Result, error) {
	ctx, span := obs.Tracer().Start(ctx, "settlement.Settle", trace.WithAttributes(
		attribute.String("settlement.key", req.Key),
		attribute.String("settlement.source", string(req.Source)),
	))
	defer span.End()

	if req.Key == "" {
		return nil, errs.Mark(errs.New("missing idempotency key"), errs.ErrValidation)
	}

	token, ok := s.locks.TryAcquire(req.Key)
	if !ok {
		s.logger.InfoContext(ctx, "settlement already in progress", slog.String("key", req.Key))
		span.SetAttributes(attribute.String("settlement.outcome", string(OutcomeAlreadyProcessing)))
		return &Result{Outcome: OutcomeAlreadyProcessing}, nil
	}
	defer func() {
		if !s.locks.Release(req.Key, token) {
			s.logger.WarnContext(ctx, "settlement lock was reaped before release", slog.String("key", req.Key))
		}
	}()

	var (
		b    *booking.Booking
		done bool
		err  error
	)
	switch req.Source {
	case SourceCheckout:
		b, done, err = s.claimCheckout(ctx, req)
	case SourceDirect:
		b, done, err = s.claimDirect(ctx, req)
	default:
		err = errs.Mark(errs.Newf("unknown settlement source %q", req.Source), errs.ErrValidation)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "claim failed")
		return nil, err
	}
	if done {
		s.logger.InfoContext(ctx, "settlement already processed", slog.String("key", req.Key))
		span.SetAttributes(attribute.String("settlement.outcome", string(OutcomeAlreadyProcessed)))
		return &Result{Outcome: OutcomeAlreadyProcessed}, nil
	}

	res, err := s.commit(ctx, b)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("settlement.outcome", string(OutcomeCreated)))
	return res, nil
}

// claimCheckout checks the durable marker and payment state, then marks the session.
func (s *Service) claimCheckout(ctx context.Context, req Request) (*booking.Booking, bool, error) {
	sess, err := s.payments.RetrieveSession(ctx, req.Key)
	if err != nil {
		return nil, false, err
	}
	if sess.Processed {
		return nil, true, nil
	}
	if !sess.Paid() {
		return nil, false, errs.Mark(
			errs.Newf("checkout session %s has payment status %q", sess.ID, sess.PaymentStatus),
			errs.ErrPaymentNotCompleted,
		)
	}

	b := req.Booking
	if b == nil {
		b, err = booking.FromMetadata(sess.Metadata, s.loc)
		if err != nil {
			return nil, false, errs.Mark(errs.Wrapf(err, "checkout session %s", sess.ID), errs.ErrValidation)
		}
	}
	paymentRef := sess.PaymentIntentID
	if paymentRef == "" {
		paymentRef = sess.ID
	}
	if err := b.Confirm(paymentRef); err != nil && !errs.Is(err, booking.ErrAlreadyConfirmed) {
		return nil, false, errs.Mark(err, errs.ErrValidation)
	}

	if err := s.payments.MarkProcessed(ctx, sess); err != nil {
		return nil, false, errs.Wrapf(err, "mark checkout session %s processed", sess.ID)
	}
	return b, false, nil
}

func (s *Service) claimDirect(ctx context.Context, req Request) (*booking.Booking, bool, error) {
	if req.Booking == nil {
		return nil, false, errs.Mark(errs.New("direct settlement requires a booking"), errs.ErrValidation)
	}
	done, err := s.markers.IsProcessed(ctx, req.Key)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrCollaborator)
	}
	if done {
		return nil, true, nil
	}
	if err := s.markers.MarkProcessed(ctx, req.Key); err != nil {
		return nil, false, errs.Mark(err, errs.ErrCollaborator)
	}
	return req.Booking, false, nil
}

func (s *Service) commit(ctx context.Context, b *booking.Booking) (*Result, error) {
	cal := s.router.CalendarFor(b.Subject())

	var (
		wg                sync.WaitGroup
		row               shared.LedgerRow
		ev                session.Event
		ledgerErr, calErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		row, ledgerErr = s.ledger.AppendBooking(ctx, b)
	}()
	go func() {
		defer wg.Done()
		ev, calErr = s.calendar.CreateSessionEvent(ctx, cal, session.NewDraft(b, s.loc.String()))
	}()
	wg.Wait()

	res := &Result{Outcome: OutcomeCreated, Booking: b}

	if err := firstErr(ledgerErr, calErr); err != nil {
		s.logger.ErrorContext(ctx, "settlement writes failed",
			slog.String("booking_ref", b.Reference()),
			slog.String("student_email", b.Student().Email),
			slog.String("subject", b.Subject()),
			slog.Bool("ledger_ok", ledgerErr == nil),
			slog.Bool("calendar_ok", calErr == nil),
			slog.String("error", err.Error()))
		s.alertAdmin(ctx, b, err)
		return nil, errs.Mark(errs.Wrapf(err, "settle booking %s", b.Reference()), errs.ErrCollaborator)
	}
	res.LedgerRow = &row
	res.Event = &ev

	s.logger.InfoContext(ctx, "booking settled",
		slog.String("booking_ref", b.Reference()),
		slog.String("event_id", ev.ID),
		slog.String("calendar", cal.Name),
		slog.String("ledger_range", row.Range))

	res.Notifications = append(res.Notifications, shared.Deliver(ctx, s.logger, "booking_confirmation", b.Student().Email,
		func(ctx context.Context) error { return s.mailer.SendBookingConfirmation(ctx, b) }))

	if err := s.publisher.PublishSettled(ctx, OpeningFor(b, ev)); err != nil {
		s.logger.WarnContext(ctx, "settled event not published",
			slog.String("booking_ref", b.Reference()),
			slog.String("error", err.Error()))
	}
	return res, nil
}

func (s *Service) alertAdmin(ctx context.Context, b *booking.Booking, cause error) {
	shared.Deliver(ctx, s.logger, "admin_alert", "admin", func(ctx context.Context) error {
		return s.mailer.SendAdminAlert(ctx, "Booking settlement failed", map[string]string{
			"Booking reference": b.Reference(),
			"Student":           b.Student().FullName(),
			"Email":             b.Student().Email,
			"Phone":             b.Student().Phone,
			"Subject":           b.Subject(),
			"Start":             b.Start().Format(time.RFC3339),
			"Payment":           b.PaymentID(),
			"Error":             cause.Error(),
		})
	})
}

// OpeningFor builds the tutor fan-out payload for a settled booking.
func OpeningFor(b *booking.Booking, ev session.Event) session.Opening {
	return session.Opening{
		BookingID:    b.ID().String(),
		Reference:    b.Reference(),
		Organization: b.Organization(),
		Subject:      b.Subject(),
		Topic:        b.Topic(),
		Size:         string(b.Size()),
		Duration:     string(b.Duration()),
		Format:       string(b.Format()),
		Start:        b.Start(),
		Price:        b.Price().String(),
		EventLink:    ev.HTMLLink,
	}
}

func firstErr(ledgerErr, calErr error) error {
	switch {
	case ledgerErr != nil && calErr != nil:
		return errs.Wrapf(ledgerErr, "calendar write also failed: %v", calErr)
	case ledgerErr != nil:
		return ledgerErr
	default:
		return calErr
	}
}
