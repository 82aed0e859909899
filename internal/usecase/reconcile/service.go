package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/pkg/obs"
	"tutor-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CycleReport summarizes one pass over every configured calendar.
type CycleReport struct {
	Calendars int `json:"calendars"`
	Events    int `json:"events"`
	Assigned  int `json:"assigned"`
	Failures  int `json:"failures"`
}

type Service struct {
	// cycleMu serializes cycles from the poller and admin triggers.
	cycleMu   sync.Mutex
	calendars shared.CalendarStore
	router    shared.CalendarRouter
	mailer    shared.Mailer
	snapshots SnapshotStore
	clock     clock.Clock
	lookback  time.Duration
	logger    *slog.Logger
}

func NewService(
	calendars shared.CalendarStore,
	router shared.CalendarRouter,
	mailer shared.Mailer,
	snapshots SnapshotStore,
	clk clock.Clock,
	lookback time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		calendars: calendars,
		router:    router,
		mailer:    mailer,
		snapshots: snapshots,
		clock:     clk,
		lookback:  lookback,
		logger:    logger,
	}
}

// Run polls until ctx is done. The first cycle runs immediately.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	s.RunCycle(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(ctx)
		}
	}
}

// RunCycle fetches recently updated events from every calendar and assigns
// newly claimed sessions. Failures are logged per calendar and per event.
// Concurrent callers wait for the running cycle to finish.
func (s *Service) RunCycle(ctx context.Context) CycleReport {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	ctx, span := obs.Tracer().Start(ctx, "reconcile.RunCycle")
	defer span.End()

	var report CycleReport
	since := s.clock.Now().Add(-s.lookback)

	for _, cal := range s.router.Calendars() {
		report.Calendars++
		events, err := s.calendars.ListUpdatedSince(ctx, cal, since)
		if err != nil {
			report.Failures++
			s.logger.ErrorContext(ctx, "calendar poll failed",
				slog.String("calendar", cal.Name),
				slog.String("error", err.Error()))
			continue
		}
		for _, ev := range events {
			report.Events++
			assigned, err := s.processEvent(ctx, cal, ev)
			if err != nil {
				report.Failures++
				s.logger.ErrorContext(ctx, "event reconciliation failed",
					slog.String("calendar", cal.Name),
					slog.String("event_id", ev.ID),
					slog.String("error", err.Error()))
				continue
			}
			if assigned {
				report.Assigned++
			}
		}
	}

	span.SetAttributes(
		attribute.Int("reconcile.events", report.Events),
		attribute.Int("reconcile.assigned", report.Assigned),
	)
	s.logger.DebugContext(ctx, "reconcile cycle finished",
		slog.Int("calendars", report.Calendars),
		slog.Int("events", report.Events),
		slog.Int("assigned", report.Assigned),
		slog.Int("failures", report.Failures))
	return report
}

func (s *Service) processEvent(ctx context.Context, cal shared.CalendarRef, ev session.Event) (bool, error) {
	prev, _, err := s.snapshots.Get(ctx, ev.ID)
	if err != nil {
		return false, errs.Wrap(err, "load snapshot")
	}

	assigned := false
	if session.ShouldAssign(len(prev.Attendees), ev) {
		// A failed patch leaves the snapshot untouched so the next cycle retries.
		if err := s.assign(ctx, cal, ev); err != nil {
			return false, err
		}
		assigned = true
	}

	updated := ev.Updated
	if updated.IsZero() {
		updated = s.clock.Now()
	}
	if err := s.snapshots.Put(ctx, Snapshot{
		EventID:     ev.ID,
		Calendar:    cal.Name,
		Attendees:   ev.AttendeeEmails(),
		LastUpdated: updated,
	}); err != nil {
		return assigned, errs.Wrap(err, "store snapshot")
	}
	return assigned, nil
}

func (s *Service) assign(ctx context.Context, cal shared.CalendarRef, ev session.Event) error {
	ctx, span := obs.Tracer().Start(ctx, "reconcile.assign", trace.WithAttributes(
		attribute.String("calendar.event_id", ev.ID),
	))
	defer span.End()

	tutor, _ := ev.Claimant()
	tutorName := session.TutorDisplayName(tutor)
	info := session.ResolveStudentInfo(ev)

	patched, err := s.calendars.PatchEvent(ctx, cal, ev.ID, session.Patch{
		Title:                 session.AssignedTitle(ev.Title, tutorName),
		ColorID:               session.ColorAssigned,
		GuestsCanInviteOthers: false,
	})
	if err != nil {
		return errs.Wrapf(err, "patch event %s", ev.ID)
	}

	s.logger.InfoContext(ctx, "session claimed",
		slog.String("calendar", cal.Name),
		slog.String("event_id", ev.ID),
		slog.String("tutor", tutor.Email),
		slog.String("student_info", info.Source.String()),
		slog.String("title", patched.Title))

	htmlLink := patched.HTMLLink
	if htmlLink == "" {
		htmlLink = ev.HTMLLink
	}
	shared.Deliver(ctx, s.logger, "tutor_assignment", tutor.Email, func(ctx context.Context) error {
		return s.mailer.SendTutorAssignment(ctx, session.AssignmentNotice{
			TutorName:  tutorName,
			TutorEmail: tutor.Email,
			Student:    info,
			Subject:    info.Subject,
			Start:      ev.Start,
			End:        ev.End,
			HTMLLink:   htmlLink,
		})
	})

	if !info.HasContact() {
		s.logger.WarnContext(ctx, "student contact unrecoverable; skipping student notification",
			slog.String("event_id", ev.ID),
			slog.String("student_info", info.Source.String()))
		return nil
	}
	shared.Deliver(ctx, s.logger, "student_assignment", info.Email, func(ctx context.Context) error {
		return s.mailer.SendStudentAssignment(ctx, info.Email, session.StudentConfirmation{
			StudentName: info.Name,
			TutorName:   tutorName,
			TutorEmail:  tutor.Email,
			Subject:     info.Subject,
			Format:      info.Format,
			Start:       ev.Start,
		})
	})
	return nil
}

func (s *Service) Snapshots(ctx context.Context) ([]Snapshot, error) {
	return s.snapshots.List(ctx)
}
