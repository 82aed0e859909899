package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/infra"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/config"
	"tutor-booking/internal/usecase/shared"

	"github.com/wneessen/go-mail"
)

const collaborator = "smtp"

// Sender delivers composed messages. *mail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type SMTPMailer struct {
	sender   Sender
	renderer *Renderer
	cfg      config.MailConfig
	clock    clock.Clock
	logger   *slog.Logger
}

// NewSMTPClient returns nil when no SMTP credentials are configured.
func NewSMTPClient(cfg config.MailConfig) (*mail.Client, error) {
	if !cfg.Configured() {
		return nil, nil
	}
	c, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return c, nil
}

// NewSMTPMailer accepts a nil sender; every send then fails with a configuration error.
func NewSMTPMailer(sender Sender, renderer *Renderer, cfg config.MailConfig, clk clock.Clock, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{sender: sender, renderer: renderer, cfg: cfg, clock: clk, logger: logger}
}

type bookingView struct {
	FirstName string
	Reference string
	Subject   string
	Topic     string
	Format    string
	Size      string
	Duration  string
	Start     time.Time
	Price     string
	Status    string
}

func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	view := bookingView{
		FirstName: b.Student().FirstName,
		Reference: b.Reference(),
		Subject:   b.Subject(),
		Topic:     b.SpecificTopic(),
		Format:    string(b.Format()),
		Size:      string(b.Size()),
		Duration:  string(b.Duration()),
		Start:     b.Start(),
		Price:     b.Price().String(),
		Status:    string(b.Status()),
	}
	subject := fmt.Sprintf("Booking confirmed: %s tutoring session (%s)", b.Subject(), b.Reference())
	return m.send(ctx, tmplBookingConfirmation, view, subject, []string{b.Student().Email}, nil)
}

func (m *SMTPMailer) SendTutorAssignment(ctx context.Context, n session.AssignmentNotice) error {
	subject := fmt.Sprintf("Confirmed: %s tutoring session assigned to you", n.Subject)
	return m.send(ctx, tmplTutorAssignment, n, subject, []string{n.TutorEmail}, nil)
}

func (m *SMTPMailer) SendStudentAssignment(ctx context.Context, to string, c session.StudentConfirmation) error {
	subject := fmt.Sprintf("Your %s tutor has been assigned", c.Subject)
	return m.send(ctx, tmplStudentAssignment, c, subject, []string{to}, nil)
}

// SendOpening blind-copies every tutor so recipients never see each other.
func (m *SMTPMailer) SendOpening(ctx context.Context, to []string, o session.Opening) error {
	if len(to) == 0 {
		return nil
	}
	subject := fmt.Sprintf("New %s tutoring session booked", o.Subject)
	return m.send(ctx, tmplOpening, o, subject, nil, to)
}

func (m *SMTPMailer) SendAdminAlert(ctx context.Context, subject string, fields map[string]string) error {
	if m.cfg.AdminEmail == "" {
		return infra.WrapCollaboratorErr(m.logger, collaborator, infra.KindNotConfigured, "admin address is not set", nil)
	}
	data := struct {
		Title  string
		Fields map[string]string
	}{Title: subject, Fields: fields}
	return m.send(ctx, tmplAdminAlert, data, "[Tutorly] "+subject, []string{m.cfg.AdminEmail}, nil)
}

func (m *SMTPMailer) Status() shared.CollaboratorStatus {
	return shared.CollaboratorStatus{
		Name:       collaborator,
		Configured: m.sender != nil,
		CheckedAt:  m.clock.Now(),
	}
}

func (m *SMTPMailer) send(ctx context.Context, tmpl string, data any, subject string, to, bcc []string) error {
	if m.sender == nil {
		return infra.WrapCollaboratorErr(m.logger, collaborator, infra.KindNotConfigured, "smtp credentials are not set", nil)
	}
	body, err := m.renderer.Render(tmpl, data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.User); err != nil {
		return infra.WrapCollaboratorErr(m.logger, collaborator, infra.KindRejected, "invalid sender address", err)
	}
	if len(to) > 0 {
		if err := msg.To(to...); err != nil {
			return infra.WrapCollaboratorErr(m.logger, collaborator, infra.KindRejected, "invalid recipient", err)
		}
	}
	if len(bcc) > 0 {
		if err := msg.Bcc(bcc...); err != nil {
			return infra.WrapCollaboratorErr(m.logger, collaborator, infra.KindRejected, "invalid bcc recipient", err)
		}
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return infra.WrapCollaboratorErr(m.logger, collaborator, infra.KindUnavailable, "send "+tmpl, err)
	}
	return nil
}
