package notify

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/usecase/shared"
)

// FanOut offers a settled session to every tutor registered for its subject.
type FanOut struct {
	directory shared.TutorDirectory
	mailer    shared.Mailer
	logger    *slog.Logger
}

func NewFanOut(directory shared.TutorDirectory, mailer shared.Mailer, logger *slog.Logger) *FanOut {
	return &FanOut{directory: directory, mailer: mailer, logger: logger}
}

func (f *FanOut) Handle(ctx context.Context, o session.Opening) shared.MailResult {
	tutors := f.directory.TutorEmails(o.Organization, o.Subject)
	if len(tutors) == 0 {
		f.logger.WarnContext(ctx, "no tutors registered for subject",
			slog.String("university", o.Organization),
			slog.String("subject", o.Subject),
			slog.String("booking_ref", o.Reference))
		return shared.MailResult{Kind: "opening"}
	}
	return shared.Deliver(ctx, f.logger, "opening", strings.Join(tutors, ","), func(ctx context.Context) error {
		return f.mailer.SendOpening(ctx, tutors, o)
	})
}

// InProcessPublisher hands settled sessions straight to a FanOut on a
// background goroutine. It is used when no broker is configured.
type InProcessPublisher struct {
	fanout *FanOut
	wg     sync.WaitGroup
}

func NewInProcessPublisher(fanout *FanOut) *InProcessPublisher {
	return &InProcessPublisher{fanout: fanout}
}

func (p *InProcessPublisher) PublishSettled(ctx context.Context, o session.Opening) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.fanout.Handle(context.WithoutCancel(ctx), o)
	}()
	return nil
}

// Wait blocks until every in-flight fan-out has finished.
func (p *InProcessPublisher) Wait() {
	p.wg.Wait()
}
