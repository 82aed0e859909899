package booking

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStudentName = errors.New("student first and last name are required")
	ErrInvalidEmail       = errors.New("invalid student email")
	ErrInvalidPhone       = errors.New("invalid student phone")
	ErrMissingSubject     = errors.New("subject is required")
	ErrInvalidClassSize   = errors.New("invalid class size")
	ErrInvalidDuration    = errors.New("invalid class duration")
	ErrInvalidFormat      = errors.New("invalid class format")
	ErrInvalidSchedule    = errors.New("invalid preferred date or time")
	ErrLeadTimeNotMet     = errors.New("sessions must be booked at least 24 hours in advance")
	ErrNonPositivePrice   = errors.New("price must be positive")
	ErrAlreadyConfirmed   = errors.New("booking is already confirmed")
)

const DefaultOrganization = "esade"

// Booking is one requested tutoring session. It is built once at intake and
// mutated only when it is settled.
type Booking struct {
	id              uuid.UUID
	reference       string
	student         Student
	subject         string
	topic           string
	format          Format
	size            ClassSize
	duration        Duration
	start           time.Time
	tutorPreference string
	referralSource  string
	organization    string
	newsletter      bool
	price           Money
	status          Status
	paymentID       string
	createdAt       time.Time
}

// Reconstruct rebuilds a booking from persisted fields without re-running intake rules.
func Reconstruct(
	id uuid.UUID,
	reference string,
	student Student,
	subject, topic string,
	format Format,
	size ClassSize,
	duration Duration,
	start time.Time,
	tutorPreference, referralSource, organization string,
	newsletter bool,
	price Money,
	status Status,
	paymentID string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		reference:       reference,
		student:         student,
		subject:         subject,
		topic:           topic,
		format:          format,
		size:            size,
		duration:        duration,
		start:           start,
		tutorPreference: tutorPreference,
		referralSource:  referralSource,
		organization:    organization,
		newsletter:      newsletter,
		price:           price,
		status:          status,
		paymentID:       paymentID,
		createdAt:       createdAt,
	}
}

// Confirm records a completed payment.
func (b *Booking) Confirm(paymentID string) error {
	if b.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	b.status = StatusConfirmed
	b.paymentID = paymentID
	return nil
}

func (b *Booking) End() time.Time {
	return b.start.Add(time.Duration(b.duration.Minutes()) * time.Minute)
}

// Topic returns the specific topic, or the subject when none was given.
func (b *Booking) Topic() string {
	if b.topic != "" {
		return b.topic
	}
	return b.subject
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Reference() string       { return b.reference }
func (b *Booking) Student() Student        { return b.student }
func (b *Booking) Subject() string         { return b.subject }
func (b *Booking) SpecificTopic() string   { return b.topic }
func (b *Booking) Format() Format          { return b.format }
func (b *Booking) Size() ClassSize         { return b.size }
func (b *Booking) Duration() Duration      { return b.duration }
func (b *Booking) Start() time.Time        { return b.start }
func (b *Booking) TutorPreference() string { return b.tutorPreference }
func (b *Booking) ReferralSource() string  { return b.referralSource }
func (b *Booking) Organization() string    { return b.organization }
func (b *Booking) Newsletter() bool        { return b.newsletter }
func (b *Booking) Price() Money            { return b.price }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) PaymentID() string       { return b.paymentID }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }

// NewReference derives a short human-facing reference from the creation instant.
func NewReference(now time.Time) string {
	s := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return "REF-" + s
}
