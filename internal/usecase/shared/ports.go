package shared

import (
	"context"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/domain/session"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// LedgerStore appends settled bookings to the bookings spreadsheet.
type LedgerStore interface {
	AppendBooking(ctx context.Context, b *booking.Booking) (LedgerRow, error)
	InitializeHeaders(ctx context.Context) error
}

// CalendarStore is the shared calendar seen by tutors.
type CalendarStore interface {
	CreateSessionEvent(ctx context.Context, cal CalendarRef, d session.Draft) (session.Event, error)
	ListUpdatedSince(ctx context.Context, cal CalendarRef, since time.Time) ([]session.Event, error)
	PatchEvent(ctx context.Context, cal CalendarRef, eventID string, p session.Patch) (session.Event, error)
}

// CalendarRouter picks the calendar a subject's sessions live on.
type CalendarRouter interface {
	CalendarFor(subject string) CalendarRef
	Calendars() []CalendarRef
}

type TutorDirectory interface {
	TutorEmails(organization, subject string) []string
}

type PaymentProcessor interface {
	CreateCheckoutSession(ctx context.Context, b *booking.Booking) (CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (CheckoutSession, error)
	MarkProcessed(ctx context.Context, s CheckoutSession) error
	ParseWebhook(payload []byte, signature string) (WebhookEvent, error)
}

// ProcessedMarkers records settled keys for bookings that never pass through the payment provider.
type ProcessedMarkers interface {
	IsProcessed(ctx context.Context, key string) (bool, error)
	MarkProcessed(ctx context.Context, key string) error
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking) error
	SendTutorAssignment(ctx context.Context, n session.AssignmentNotice) error
	SendStudentAssignment(ctx context.Context, to string, c session.StudentConfirmation) error
	SendOpening(ctx context.Context, to []string, o session.Opening) error
	SendAdminAlert(ctx context.Context, subject string, fields map[string]string) error
}

type EventPublisher interface {
	PublishSettled(ctx context.Context, o session.Opening) error
}

// Probe reports whether a collaborator is configured.
type Probe interface {
	Status() CollaboratorStatus
}
