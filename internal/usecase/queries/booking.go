package queries

import (
	"context"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type Quote struct {
	Size     booking.ClassSize
	Duration booking.Duration
	Price    booking.Money
}

type BookingQueries interface {
	VerifySession(ctx context.Context, sessionID string) (*shared.CheckoutSession, error)
	QuotePrice(size, duration string) Quote
}

type bookingQueriesImpl struct {
	payments shared.PaymentProcessor
	prices   booking.PriceCalculator
}

func NewBookingQueries(payments shared.PaymentProcessor, prices booking.PriceCalculator) BookingQueries {
	return &bookingQueriesImpl{payments: payments, prices: prices}
}

func (q *bookingQueriesImpl) VerifySession(ctx context.Context, sessionID string) (*shared.CheckoutSession, error) {
	if sessionID == "" {
		return nil, errs.Mark(errs.New("session_id is required"), errs.ErrValidation)
	}
	sess, err := q.payments.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// QuotePrice never fails: unknown inputs are priced as a one-hour solo session.
func (q *bookingQueriesImpl) QuotePrice(size, duration string) Quote {
	s, d := booking.ClassSize(size), booking.Duration(duration)
	if !s.IsValid() {
		s = booking.SizeSolo
	}
	if !d.IsValid() {
		d = booking.DurationOneHour
	}
	return Quote{Size: s, Duration: d, Price: q.prices.CalculatePrice(s, d)}
}
