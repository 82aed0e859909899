package session

import (
	"fmt"
	"strings"
	"time"

	"tutor-booking/internal/domain/booking"
)

const (
	UnassignedMarker = "UNASSIGNED"
	AssignedMarker   = "ASSIGNED"

	ColorUnassigned = "8"
	ColorAssigned   = "10"

	titleSuffix = " Tutoring Session"
)

// Private extended-property keys written on every session event.
const (
	KeyBookingRef      = "bookingRef"
	KeyStudentName     = "studentName"
	KeyStudentEmail    = "studentEmail"
	KeyStudentPhone    = "studentPhone"
	KeyTutorPreference = "tutorPreference"
	KeyPrice           = "price"
	KeyFormat          = "format"
	KeySize            = "size"
	KeyDuration        = "duration"
	KeySpecificTopic   = "specificTopic"
	KeySubject         = "subject"
)

type Attendee struct {
	Email       string
	DisplayName string
}

// Event is the calendar-side view of a session.
type Event struct {
	ID          string
	CalendarID  string
	Title       string
	Description string
	ColorID     string
	HTMLLink    string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []Attendee
	Private     map[string]string
	Updated     time.Time
}

func (e Event) IsUnassigned() bool {
	return strings.Contains(e.Title, UnassignedMarker)
}

// Claimant is the first attendee to have joined the event.
func (e Event) Claimant() (Attendee, bool) {
	if len(e.Attendees) == 0 {
		return Attendee{}, false
	}
	return e.Attendees[0], true
}

func (e Event) AttendeeEmails() []string {
	out := make([]string, 0, len(e.Attendees))
	for _, a := range e.Attendees {
		out = append(out, a.Email)
	}
	return out
}

// Patch is the subset of event fields rewritten when a tutor claims a session.
type Patch struct {
	Title                 string
	ColorID               string
	GuestsCanInviteOthers bool
}

func UnassignedTitle(size booking.ClassSize, subject, studentName string) string {
	return fmt.Sprintf("%s - %s %s%s - %s", UnassignedMarker, size, subject, titleSuffix, studentName)
}

// AssignedTitle swaps the first marker for the tutor segment and keeps the rest of the title.
func AssignedTitle(title, tutorName string) string {
	return strings.Replace(title, UnassignedMarker, AssignedMarker+" - "+tutorName, 1)
}

// TitleParts are the segments recoverable from a session title.
type TitleParts struct {
	Size        string
	Subject     string
	StudentName string
}

func ParseTitle(title string) TitleParts {
	segments := strings.Split(title, " - ")
	var body string
	var parts TitleParts
	switch {
	case len(segments) >= 3 && segments[0] == UnassignedMarker:
		body, parts.StudentName = segments[1], strings.Join(segments[2:], " - ")
	case len(segments) >= 4 && segments[0] == AssignedMarker:
		body, parts.StudentName = segments[2], strings.Join(segments[3:], " - ")
	default:
		return parts
	}
	body = strings.TrimSuffix(body, titleSuffix)
	size, subject, _ := strings.Cut(body, " ")
	parts.Size, parts.Subject = size, subject
	return parts
}

// Draft describes a new unassigned session event for a booking.
type Draft struct {
	Title       string
	Description string
	ColorID     string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Private     map[string]string
}

func NewDraft(b *booking.Booking, timeZone string) Draft {
	s := b.Student()
	return Draft{
		Title:       UnassignedTitle(b.Size(), b.Subject(), s.FullName()),
		Description: Description(b),
		ColorID:     ColorUnassigned,
		Location:    location(b.Format()),
		Start:       b.Start(),
		End:         b.End(),
		TimeZone:    timeZone,
		Private: map[string]string{
			KeyBookingRef:      b.Reference(),
			KeyStudentName:     s.FullName(),
			KeyStudentEmail:    s.Email,
			KeyStudentPhone:    s.Phone,
			KeyTutorPreference: b.TutorPreference(),
			KeyPrice:           b.Price().String(),
			KeyFormat:          string(b.Format()),
			KeySize:            string(b.Size()),
			KeyDuration:        string(b.Duration()),
			KeySpecificTopic:   b.SpecificTopic(),
			KeySubject:         b.Subject(),
		},
	}
}

// Description is the tutor-visible body. Student contact details stay in private fields.
func Description(b *booking.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tutoring session for %s\n\n", b.Topic())
	fmt.Fprintf(&sb, "Class Format: %s\n", b.Format())
	fmt.Fprintf(&sb, "Class Size: %s\n", b.Size())
	fmt.Fprintf(&sb, "Duration: %s\n", b.Duration())
	fmt.Fprintf(&sb, "Booking Reference: %s\n", b.Reference())
	fmt.Fprintf(&sb, "Price: €%s", b.Price())
	return sb.String()
}

func location(f booking.Format) string {
	if f == booking.FormatOnline {
		return "Online"
	}
	return "To be agreed with the tutor"
}

// ShouldAssign reports the 0 to N attendee edge on a still-unassigned event.
func ShouldAssign(previousAttendees int, e Event) bool {
	return previousAttendees == 0 && len(e.Attendees) > 0 && e.IsUnassigned()
}
