package shared

import "time"

// CheckoutSession is the payment provider's view of a checkout.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	PaymentIntentID string
	CustomerEmail   string
	AmountTotal     int64
	Currency        string
	// Processed is the durable marker written once a booking has been settled.
	Processed bool
	Metadata  map[string]string
}

func (s CheckoutSession) Paid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

const PaymentStatusPaid = "paid"

const (
	WebhookCheckoutCompleted     = "checkout.session.completed"
	WebhookAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
)

// WebhookEvent is a signature-verified provider notification.
type WebhookEvent struct {
	ID        string
	Type      string
	SessionID string
}

// LedgerRow identifies an appended ledger row.
type LedgerRow struct {
	Range string
}

// CalendarRef is a routed calendar.
type CalendarRef struct {
	ID   string
	Name string
}

type CollaboratorStatus struct {
	Name       string
	Configured bool
	CheckedAt  time.Time
}
