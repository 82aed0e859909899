//go:build unit

package mailer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/infra/mailer"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type captureSender struct {
	sent []*mail.Msg
	err  error
}

func (c *captureSender) DialAndSendWithContext(_ context.Context, msgs ...*mail.Msg) error {
	c.sent = append(c.sent, msgs...)
	return c.err
}

func newRenderer(t *testing.T) *mailer.Renderer {
	t.Helper()
	r, err := mailer.NewRenderer(builder.Madrid)
	require.NoError(t, err)
	return r
}

func newMailer(t *testing.T, sender mailer.Sender) *mailer.SMTPMailer {
	t.Helper()
	cfg := config.MailConfig{
		Host:       "smtp.example.com",
		Port:       587,
		User:       "bookings@tutorly.example",
		Password:   "secret",
		FromName:   "Tutorly Booking",
		AdminEmail: "ops@tutorly.example",
	}
	return mailer.NewSMTPMailer(sender, newRenderer(t), cfg,
		clock.NewMockClock(builder.BookingNow), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func raw(t *testing.T, m *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestRenderer_TutorAssignment(t *testing.T) {
	start := time.Date(2025, 3, 12, 16, 0, 0, 0, builder.Madrid)
	notice := session.AssignmentNotice{
		TutorName:  "Maria Lopez",
		TutorEmail: "maria.lopez@tutorly.example",
		Subject:    "Microeconomics",
		Start:      start,
		End:        start.Add(90 * time.Minute),
		HTMLLink:   "https://calendar.example/evt_1",
		Student: session.StudentInfo{
			Source: session.SourceStructured,
			Name:   "Jane Doe",
			Email:  "jane.doe@example.com",
			Phone:  "34600123456",
			Size:   "Duo",
		},
	}

	body, err := newRenderer(t).Render("tutor_assignment.html", notice)
	require.NoError(t, err)

	assert.Contains(t, body, "Tutoring Session Confirmed")
	assert.Contains(t, body, "Wednesday, 12 March 2025")
	assert.Contains(t, body, "16:00 - 17:30")
	assert.Contains(t, body, "jane.doe@example.com")
	assert.Contains(t, body, "34600123456")
	assert.Contains(t, body, "General tutoring")
	assert.Contains(t, body, `href="https://calendar.example/evt_1"`)
}

func TestRenderer_TutorAssignment_UnrecoverableStudent(t *testing.T) {
	notice := session.AssignmentNotice{
		TutorName: "Maria Lopez",
		Subject:   "Finance",
		Start:     builder.BookingNow,
		End:       builder.BookingNow.Add(time.Hour),
	}

	body, err := newRenderer(t).Render("tutor_assignment.html", notice)
	require.NoError(t, err)

	assert.Contains(t, body, "could not be recovered")
	assert.NotContains(t, body, "<strong>Email:</strong>")
	assert.NotContains(t, body, "View in Calendar")
}

func TestRenderer_EscapesUserInput(t *testing.T) {
	o := session.Opening{Subject: "<script>alert(1)</script>", Start: builder.BookingNow}

	body, err := newRenderer(t).Render("opening.html", o)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestSMTPMailer_SendBookingConfirmation(t *testing.T) {
	sender := &captureSender{}
	m := newMailer(t, sender)
	b := builder.NewBookingBuilder().MustBuildDomain()

	require.NoError(t, m.SendBookingConfirmation(context.Background(), b))
	require.Len(t, sender.sent, 1)

	rcpts, err := sender.sent[0].GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"jane.doe@example.com"}, rcpts)
	assert.Contains(t, raw(t, sender.sent[0]), "Subject: Booking confirmed: Microeconomics tutoring session")
}

func TestSMTPMailer_SendOpening(t *testing.T) {
	sender := &captureSender{}
	m := newMailer(t, sender)
	tutors := []string{"a@tutorly.example", "b@tutorly.example"}

	require.NoError(t, m.SendOpening(context.Background(), tutors, session.Opening{Subject: "Finance", Start: builder.BookingNow}))
	require.Len(t, sender.sent, 1)

	rcpts, err := sender.sent[0].GetRecipients()
	require.NoError(t, err)
	assert.ElementsMatch(t, tutors, rcpts)

	require.NoError(t, m.SendOpening(context.Background(), nil, session.Opening{Subject: "Finance"}))
	assert.Len(t, sender.sent, 1, "no recipients means nothing is sent")
}

func TestSMTPMailer_Failures(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		m := newMailer(t, nil)
		err := m.SendStudentAssignment(context.Background(), "jane.doe@example.com", session.StudentConfirmation{Subject: "Finance"})
		assert.True(t, errs.Is(err, errs.ErrConfiguration))
		assert.False(t, m.Status().Configured)
	})

	t.Run("relay down", func(t *testing.T) {
		m := newMailer(t, &captureSender{err: errors.New("connection refused")})
		err := m.SendAdminAlert(context.Background(), "Booking settlement failed", map[string]string{"Booking reference": "REF-ABC123"})
		assert.True(t, errs.Is(err, errs.ErrCollaborator))
	})
}
