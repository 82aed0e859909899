//go:build unit || e2e

package builder

import (
	"time"

	"tutor-booking/internal/domain/booking"
	reqdto "tutor-booking/internal/handler/dto/request"
	"tutor-booking/internal/pkg/clock"
)

var Madrid = mustLoad("Europe/Madrid")

// BookingNow is the reference "current" instant used across booking tests.
var BookingNow = time.Date(2025, 3, 10, 10, 0, 0, 0, Madrid)

type BookingBuilder struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Subject         string
	SpecificTopic   string
	Format          string
	ClassSize       string
	Duration        string
	PreferredDate   string
	PreferredTime   string
	TutorPreference string
	ReferralSource  string
	Organization    string
	Newsletter      bool
	PriceCents      *int64
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@example.com",
		Phone:          "+34 600 123 456",
		Subject:        "Microeconomics",
		SpecificTopic:  "Elasticity",
		Format:         "Online",
		ClassSize:      "Solo",
		Duration:       "1 hour",
		PreferredDate:  "2025-03-12",
		PreferredTime:  "16:00",
		ReferralSource: "Instagram",
		Organization:   "esade",
		Now:            BookingNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		Subject:         b.Subject,
		SpecificTopic:   b.SpecificTopic,
		Format:          booking.Format(b.Format),
		ClassSize:       booking.ClassSize(b.ClassSize),
		Duration:        booking.Duration(b.Duration),
		PreferredDate:   b.PreferredDate,
		PreferredTime:   b.PreferredTime,
		TutorPreference: b.TutorPreference,
		ReferralSource:  b.ReferralSource,
		Organization:    b.Organization,
		Newsletter:      b.Newsletter,
		PriceCents:      b.PriceCents,
	}
}

func (b *BookingBuilder) Factory() *booking.Factory {
	return booking.NewFactory(
		clock.NewMockClock(b.Now),
		booking.NewDefaultPriceCalculator(),
		24*time.Hour,
		Madrid,
	)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return b.Factory().Create(b.BuildDraft())
}

// MustBuildDomain panics on invalid input and is meant for fixtures only.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		Subject:         b.Subject,
		SpecificTopic:   b.SpecificTopic,
		ClassFormat:     b.Format,
		ClassSize:       b.ClassSize,
		Duration:        b.Duration,
		PreferredDate:   b.PreferredDate,
		PreferredTime:   b.PreferredTime,
		TutorPreference: b.TutorPreference,
		ReferralSource:  b.ReferralSource,
		University:      b.Organization,
		Newsletter:      b.Newsletter,
		PriceCents:      b.PriceCents,
	}
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 3600)
	}
	return loc
}
