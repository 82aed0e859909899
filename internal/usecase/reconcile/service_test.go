//go:build unit

package reconcile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/shared"
	reconcilemock "tutor-booking/tests/mock/reconcile"
	sharedmock "tutor-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	econ = shared.CalendarRef{ID: "econ@group.calendar.google.com", Name: "Economics"}
	law  = shared.CalendarRef{ID: "law@group.calendar.google.com", Name: "Law"}
)

type ReconcileServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	clock     *clock.MockClock
	calendars *sharedmock.MockCalendarStore
	router    *sharedmock.MockCalendarRouter
	mailer    *sharedmock.MockMailer
	snapshots *reconcile.MemorySnapshotStore
	service   *reconcile.Service
}

func (s *ReconcileServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	s.calendars = sharedmock.NewMockCalendarStore(s.ctrl)
	s.router = sharedmock.NewMockCalendarRouter(s.ctrl)
	s.mailer = sharedmock.NewMockMailer(s.ctrl)
	s.snapshots = reconcile.NewMemorySnapshotStore()
	s.service = reconcile.NewService(s.calendars, s.router, s.mailer, s.snapshots, s.clock, time.Hour,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.router.EXPECT().Calendars().Return([]shared.CalendarRef{econ}).AnyTimes()
}

func TestReconcileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcileServiceTestSuite))
}

func unassignedEvent(attendees ...session.Attendee) session.Event {
	return session.Event{
		ID:        "evt_1",
		Title:     "UNASSIGNED - Solo Microeconomics Tutoring Session - Jane Doe",
		Start:     time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC),
		HTMLLink:  "https://calendar/evt_1",
		Attendees: attendees,
		Private: map[string]string{
			session.KeyStudentName:  "Jane Doe",
			session.KeyStudentEmail: "jane.doe@example.com",
			session.KeySubject:      "Microeconomics",
			session.KeyFormat:       "Online",
		},
	}
}

func (s *ReconcileServiceTestSuite) expectList(events ...session.Event) {
	s.calendars.EXPECT().ListUpdatedSince(gomock.Any(), econ, s.clock.Now().Add(-time.Hour)).
		Return(events, nil).Times(1)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_ClaimFiresOnce() {
	tutor := session.Attendee{Email: "john.smith@esade.edu"}
	claimed := unassignedEvent(tutor)

	s.expectList(claimed)
	s.calendars.EXPECT().PatchEvent(gomock.Any(), econ, "evt_1", session.Patch{
		Title:                 "ASSIGNED - John Smith - Solo Microeconomics Tutoring Session - Jane Doe",
		ColorID:               session.ColorAssigned,
		GuestsCanInviteOthers: false,
	}).Return(session.Event{ID: "evt_1", Title: "ASSIGNED - John Smith - Solo Microeconomics Tutoring Session - Jane Doe"}, nil).Times(1)
	s.mailer.EXPECT().SendTutorAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n session.AssignmentNotice) error {
			s.Equal("John Smith", n.TutorName)
			s.Equal("john.smith@esade.edu", n.TutorEmail)
			s.Equal(session.SourceStructured, n.Student.Source)
			s.Equal("Microeconomics", n.Subject)
			s.Equal("https://calendar/evt_1", n.HTMLLink)
			return nil
		}).Times(1)
	s.mailer.EXPECT().SendStudentAssignment(gomock.Any(), "jane.doe@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, c session.StudentConfirmation) error {
			s.Equal("John Smith", c.TutorName)
			s.Equal("Jane Doe", c.StudentName)
			return nil
		}).Times(1)

	report := s.service.RunCycle(context.Background())
	s.Equal(reconcile.CycleReport{Calendars: 1, Events: 1, Assigned: 1}, report)

	snap, ok, err := s.snapshots.Get(context.Background(), "evt_1")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal([]string{"john.smith@esade.edu"}, snap.Attendees)

	// Same attendee list on the next poll: no second transition.
	s.expectList(claimed)
	report = s.service.RunCycle(context.Background())
	s.Equal(0, report.Assigned)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_ConcurrentCyclesClaimOnce() {
	claimed := unassignedEvent(session.Attendee{Email: "john.smith@esade.edu"})

	s.calendars.EXPECT().ListUpdatedSince(gomock.Any(), econ, gomock.Any()).
		Return([]session.Event{claimed}, nil).Times(2)
	s.calendars.EXPECT().PatchEvent(gomock.Any(), econ, "evt_1", gomock.Any()).
		DoAndReturn(func(context.Context, shared.CalendarRef, string, session.Patch) (session.Event, error) {
			time.Sleep(50 * time.Millisecond)
			return session.Event{ID: "evt_1"}, nil
		}).Times(1)
	s.mailer.EXPECT().SendTutorAssignment(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mailer.EXPECT().SendStudentAssignment(gomock.Any(), "jane.doe@example.com", gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	reports := make([]reconcile.CycleReport, 2)
	for i := range reports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i] = s.service.RunCycle(context.Background())
		}()
	}
	wg.Wait()

	s.Equal(1, reports[0].Assigned+reports[1].Assigned)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_NonZeroPreviousCountDoesNotFire() {
	s.Require().NoError(s.snapshots.Put(context.Background(), reconcile.Snapshot{
		EventID:   "evt_1",
		Attendees: []string{"a@example.com"},
	}))

	s.expectList(unassignedEvent(session.Attendee{Email: "a@example.com"}, session.Attendee{Email: "b@example.com"}))

	report := s.service.RunCycle(context.Background())
	s.Equal(0, report.Assigned)

	snap, _, _ := s.snapshots.Get(context.Background(), "evt_1")
	s.Len(snap.Attendees, 2)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_AssignedTitleDoesNotFire() {
	ev := unassignedEvent(session.Attendee{Email: "a@example.com"})
	ev.Title = "ASSIGNED - A - Solo Microeconomics Tutoring Session - Jane Doe"
	s.expectList(ev)

	report := s.service.RunCycle(context.Background())
	s.Equal(0, report.Assigned)
	s.Equal(0, report.Failures)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_PatchFailureRetriesNextCycle() {
	claimed := unassignedEvent(session.Attendee{Email: "tutor@example.com", DisplayName: "Tutor One"})

	s.expectList(claimed)
	s.calendars.EXPECT().PatchEvent(gomock.Any(), econ, "evt_1", gomock.Any()).
		Return(session.Event{}, errors.New("403 forbidden")).Times(1)

	report := s.service.RunCycle(context.Background())
	s.Equal(1, report.Failures)
	_, ok, _ := s.snapshots.Get(context.Background(), "evt_1")
	s.False(ok)

	s.expectList(claimed)
	s.calendars.EXPECT().PatchEvent(gomock.Any(), econ, "evt_1", gomock.Any()).
		Return(session.Event{ID: "evt_1"}, nil).Times(1)
	s.mailer.EXPECT().SendTutorAssignment(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mailer.EXPECT().SendStudentAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(1)

	report = s.service.RunCycle(context.Background())
	s.Equal(1, report.Assigned)
	s.Equal(0, report.Failures)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_UnrecoverableStudentSkipsStudentMail() {
	ev := unassignedEvent(session.Attendee{Email: "tutor@example.com"})
	ev.Private = nil
	s.expectList(ev)

	s.calendars.EXPECT().PatchEvent(gomock.Any(), econ, "evt_1", gomock.Any()).Return(session.Event{ID: "evt_1"}, nil).Times(1)
	s.mailer.EXPECT().SendTutorAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n session.AssignmentNotice) error {
			s.Equal(session.SourceUnrecoverable, n.Student.Source)
			return nil
		}).Times(1)

	report := s.service.RunCycle(context.Background())
	s.Equal(1, report.Assigned)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_CalendarFailureDoesNotStopOthers() {
	ctrl := gomock.NewController(s.T())
	router := sharedmock.NewMockCalendarRouter(ctrl)
	router.EXPECT().Calendars().Return([]shared.CalendarRef{law, econ}).Times(1)
	svc := reconcile.NewService(s.calendars, router, s.mailer, s.snapshots, s.clock, time.Hour,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.calendars.EXPECT().ListUpdatedSince(gomock.Any(), law, gomock.Any()).Return(nil, errors.New("404")).Times(1)
	s.calendars.EXPECT().ListUpdatedSince(gomock.Any(), econ, gomock.Any()).Return([]session.Event{{ID: "evt_x", Title: "Team sync"}}, nil).Times(1)

	report := svc.RunCycle(context.Background())
	s.Equal(reconcile.CycleReport{Calendars: 2, Events: 1, Failures: 1}, report)
}

func (s *ReconcileServiceTestSuite) TestRunCycle_SnapshotStoreFailure() {
	store := reconcilemock.NewMockSnapshotStore(s.ctrl)
	svc := reconcile.NewService(s.calendars, s.router, s.mailer, store, s.clock, time.Hour,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.expectList(unassignedEvent())
	store.EXPECT().Get(gomock.Any(), "evt_1").Return(reconcile.Snapshot{}, false, errors.New("conn refused")).Times(1)

	report := svc.RunCycle(context.Background())
	s.Equal(1, report.Failures)
}
