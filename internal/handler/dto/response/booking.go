package response

import (
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/usecase/commands"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	Status     string     `json:"status"`
	BookingID  string     `json:"bookingId,omitempty"`
	BookingRef string     `json:"bookingRef,omitempty"`
	Price      string     `json:"price,omitempty"`
	PriceCents int64      `json:"priceCents,omitempty"`
	Start      *time.Time `json:"start,omitempty"`
	EventID    string     `json:"eventId,omitempty"`
	EventLink  string     `json:"eventLink,omitempty"`
	LedgerRow  string     `json:"ledgerRow,omitempty"`
}

func FromSettlement(res *settlement.Result) BookingResponse {
	out := BookingResponse{Status: string(res.Outcome)}
	if b := res.Booking; b != nil {
		start := b.Start()
		out.BookingID = b.ID().String()
		out.BookingRef = b.Reference()
		out.Price = b.Price().String()
		out.PriceCents = b.Price().Cents()
		out.Start = &start
	}
	if res.Event != nil {
		out.EventID = res.Event.ID
		out.EventLink = res.Event.HTMLLink
	}
	if res.LedgerRow != nil {
		out.LedgerRow = res.LedgerRow.Range
	}
	return out
}

type CheckoutResponse struct {
	SessionID  string `json:"sessionId"`
	URL        string `json:"url"`
	BookingRef string `json:"bookingRef"`
	Price      string `json:"price"`
}

type SessionStatusResponse struct {
	SessionID     string `json:"sessionId" copier:"ID"`
	PaymentStatus string `json:"paymentStatus"`
	Paid          bool   `json:"paid"`
	Processed     bool   `json:"processed"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	AmountTotal   int64  `json:"amountTotal"`
	Currency      string `json:"currency,omitempty"`
	BookingRef    string `json:"bookingRef,omitempty"`
}

func FromCheckout(res *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		SessionID:  res.SessionID,
		URL:        res.URL,
		BookingRef: res.Booking.Reference(),
		Price:      res.Booking.Price().String(),
	}
}

// FromCheckoutSession copies matching fields, Paid included through the method of the same name.
func FromCheckoutSession(sess *shared.CheckoutSession) (SessionStatusResponse, error) {
	var out SessionStatusResponse
	if err := copier.Copy(&out, sess); err != nil {
		return SessionStatusResponse{}, err
	}
	out.BookingRef = sess.Metadata[booking.MetaReference]
	return out, nil
}

type PriceResponse struct {
	ClassSize      string `json:"classSize"`
	Duration       string `json:"duration"`
	Price          string `json:"price"`
	PriceCents     int64  `json:"priceCents"`
	PerPerson      string `json:"perPerson"`
	PerPersonCents int64  `json:"perPersonCents"`
}

func FromQuote(size booking.ClassSize, duration booking.Duration, price booking.Money) PriceResponse {
	per := booking.PerPerson(price, size)
	return PriceResponse{
		ClassSize:      string(size),
		Duration:       string(duration),
		Price:          price.String(),
		PriceCents:     price.Cents(),
		PerPerson:      per.String(),
		PerPersonCents: per.Cents(),
	}
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Type     string `json:"type"`
	Status   string `json:"status,omitempty"`
}
