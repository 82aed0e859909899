package booking

import (
	"strings"
	"time"

	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Draft is the raw intake payload for a booking.
type Draft struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Subject         string
	SpecificTopic   string
	Format          Format
	ClassSize       ClassSize
	Duration        Duration
	PreferredDate   string
	PreferredTime   string
	TutorPreference string
	ReferralSource  string
	Organization    string
	Newsletter      bool
	// PriceCents overrides the computed price when set.
	PriceCents *int64
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	LeadTime        time.Duration
	Location        *time.Location
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, leadTime time.Duration, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		LeadTime:        leadTime,
		Location:        loc,
	}
}

func (f *Factory) Create(d Draft) (*Booking, error) {
	student, err := NewStudent(d.FirstName, d.LastName, d.Email, d.Phone)
	if err != nil {
		return nil, err
	}
	subject := strings.TrimSpace(d.Subject)
	if subject == "" {
		return nil, ErrMissingSubject
	}
	if !d.ClassSize.IsValid() {
		return nil, ErrInvalidClassSize
	}
	if !d.Duration.IsValid() {
		return nil, ErrInvalidDuration
	}
	if !d.Format.IsValid() {
		return nil, ErrInvalidFormat
	}

	start, err := f.ParseStart(d.PreferredDate, d.PreferredTime)
	if err != nil {
		return nil, err
	}
	now := f.Clock.Now()
	if err := ValidateLeadTime(now, start, f.LeadTime); err != nil {
		return nil, err
	}

	price := f.PriceCalculator.CalculatePrice(d.ClassSize, d.Duration)
	if d.PriceCents != nil {
		price = NewMoney(*d.PriceCents)
	}
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}

	return &Booking{
		id:              uuid.New(),
		reference:       NewReference(now),
		student:         student,
		subject:         subject,
		topic:           strings.TrimSpace(d.SpecificTopic),
		format:          d.Format,
		size:            d.ClassSize,
		duration:        d.Duration,
		start:           start,
		tutorPreference: patch.OrDefault(strings.TrimSpace(d.TutorPreference), NoPreference),
		referralSource:  strings.TrimSpace(d.ReferralSource),
		organization:    patch.OrDefault(strings.ToLower(strings.TrimSpace(d.Organization)), DefaultOrganization),
		newsletter:      d.Newsletter,
		price:           price,
		status:          StatusPending,
		createdAt:       now,
	}, nil
}

// ParseStart interprets the preferred date and time as wall-clock time in the factory's zone.
func (f *Factory) ParseStart(date, hhmm string) (time.Time, error) {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(hhmm), f.Location)
	if err != nil {
		return time.Time{}, ErrInvalidSchedule
	}
	return start, nil
}

// ValidateLeadTime rejects sessions starting sooner than lead after now.
func ValidateLeadTime(now, start time.Time, lead time.Duration) error {
	if start.Before(now.Add(lead)) {
		return ErrLeadTimeNotMet
	}
	return nil
}
