package booking

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var ErrIncompleteMetadata = errors.New("booking metadata is incomplete")

const (
	MetaBookingID       = "booking_id"
	MetaReference       = "booking_ref"
	MetaFirstName       = "first_name"
	MetaLastName        = "last_name"
	MetaEmail           = "email"
	MetaPhone           = "phone"
	MetaSubject         = "subject"
	MetaSpecificTopic   = "specific_topic"
	MetaFormat          = "class_format"
	MetaSize            = "class_size"
	MetaDuration        = "duration"
	MetaStart           = "start"
	MetaTutorPreference = "tutor_preference"
	MetaReferralSource  = "referral_source"
	MetaOrganization    = "university"
	MetaNewsletter      = "newsletter"
	MetaPriceCents      = "price_cents"
	MetaCreatedAt       = "created_at"
)

// ToMetadata flattens the booking into string pairs that survive a round trip
// through the payment provider.
func (b *Booking) ToMetadata() map[string]string {
	return map[string]string{
		MetaBookingID:       b.id.String(),
		MetaReference:       b.reference,
		MetaFirstName:       b.student.FirstName,
		MetaLastName:        b.student.LastName,
		MetaEmail:           b.student.Email,
		MetaPhone:           b.student.Phone,
		MetaSubject:         b.subject,
		MetaSpecificTopic:   b.topic,
		MetaFormat:          string(b.format),
		MetaSize:            string(b.size),
		MetaDuration:        string(b.duration),
		MetaStart:           b.start.Format(time.RFC3339),
		MetaTutorPreference: b.tutorPreference,
		MetaReferralSource:  b.referralSource,
		MetaOrganization:    b.organization,
		MetaNewsletter:      strconv.FormatBool(b.newsletter),
		MetaPriceCents:      strconv.FormatInt(b.price.Cents(), 10),
		MetaCreatedAt:       b.createdAt.Format(time.RFC3339),
	}
}

// FromMetadata rebuilds a pending booking from ToMetadata output.
func FromMetadata(md map[string]string, loc *time.Location) (*Booking, error) {
	id, err := uuid.Parse(md[MetaBookingID])
	if err != nil {
		return nil, ErrIncompleteMetadata
	}
	start, err := time.Parse(time.RFC3339, md[MetaStart])
	if err != nil {
		return nil, ErrIncompleteMetadata
	}
	if loc != nil {
		start = start.In(loc)
	}
	cents, err := strconv.ParseInt(md[MetaPriceCents], 10, 64)
	if err != nil || cents <= 0 {
		return nil, ErrIncompleteMetadata
	}
	if md[MetaReference] == "" || md[MetaEmail] == "" || md[MetaSubject] == "" {
		return nil, ErrIncompleteMetadata
	}
	createdAt, _ := time.Parse(time.RFC3339, md[MetaCreatedAt])
	newsletter, _ := strconv.ParseBool(md[MetaNewsletter])

	return Reconstruct(
		id,
		md[MetaReference],
		Student{
			FirstName: md[MetaFirstName],
			LastName:  md[MetaLastName],
			Email:     md[MetaEmail],
			Phone:     md[MetaPhone],
		},
		md[MetaSubject],
		md[MetaSpecificTopic],
		Format(md[MetaFormat]),
		ClassSize(md[MetaSize]),
		Duration(md[MetaDuration]),
		start,
		md[MetaTutorPreference],
		md[MetaReferralSource],
		md[MetaOrganization],
		newsletter,
		NewMoney(cents),
		StatusPending,
		"",
		createdAt,
	), nil
}
