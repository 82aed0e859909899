//go:build unit

package settlement_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/settlement"
	"tutor-booking/internal/usecase/shared"
	"tutor-booking/tests/common/builder"
	sharedmock "tutor-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	clock     *clock.MockClock
	locks     *settlement.LockStore
	markers   *settlement.MemoryMarkers
	payments  *sharedmock.MockPaymentProcessor
	ledger    *sharedmock.MockLedgerStore
	calendar  *sharedmock.MockCalendarStore
	router    *sharedmock.MockCalendarRouter
	mailer    *sharedmock.MockMailer
	publisher *sharedmock.MockEventPublisher
	service   *settlement.Service
	cal       shared.CalendarRef
}

func (s *SettlementServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(builder.BookingNow)
	s.locks = settlement.NewLockStore(s.clock, 5*time.Minute)
	s.markers = settlement.NewMemoryMarkers(s.clock)
	s.payments = sharedmock.NewMockPaymentProcessor(s.ctrl)
	s.ledger = sharedmock.NewMockLedgerStore(s.ctrl)
	s.calendar = sharedmock.NewMockCalendarStore(s.ctrl)
	s.router = sharedmock.NewMockCalendarRouter(s.ctrl)
	s.mailer = sharedmock.NewMockMailer(s.ctrl)
	s.publisher = sharedmock.NewMockEventPublisher(s.ctrl)
	s.cal = shared.CalendarRef{ID: "econ@group.calendar.google.com", Name: "Economics"}

	s.router.EXPECT().CalendarFor(gomock.Any()).Return(s.cal).AnyTimes()

	s.service = settlement.NewService(
		s.locks, s.markers, s.payments, s.ledger, s.calendar, s.router, s.mailer, s.publisher,
		builder.Madrid, slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}

func (s *SettlementServiceTestSuite) paidSession(b *booking.Booking) shared.CheckoutSession {
	return shared.CheckoutSession{
		ID:              "cs_test_1",
		PaymentStatus:   shared.PaymentStatusPaid,
		PaymentIntentID: "pi_test_1",
		AmountTotal:     b.Price().Cents(),
		Metadata:        b.ToMetadata(),
	}
}

// expectWrites registers exactly one successful ledger/calendar/mail/publish round.
func (s *SettlementServiceTestSuite) expectWrites() {
	s.ledger.EXPECT().AppendBooking(gomock.Any(), gomock.Any()).
		Return(shared.LedgerRow{Range: "Bookings!A2:Q2"}, nil).Times(1)
	s.calendar.EXPECT().CreateSessionEvent(gomock.Any(), s.cal, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.CalendarRef, d session.Draft) (session.Event, error) {
			return session.Event{ID: "evt_1", Title: d.Title, HTMLLink: "https://calendar/evt_1"}, nil
		}).Times(1)
	s.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.publisher.EXPECT().PublishSettled(gomock.Any(), gomock.Any()).Return(nil).Times(1)
}

func (s *SettlementServiceTestSuite) TestSettle_CheckoutCreatesOnce() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	sess := s.paidSession(b)

	// The provider-side marker flips once the service writes it.
	processed := false
	s.payments.EXPECT().RetrieveSession(gomock.Any(), sess.ID).
		DoAndReturn(func(context.Context, string) (shared.CheckoutSession, error) {
			out := sess
			out.Processed = processed
			return out, nil
		}).Times(2)
	s.payments.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, shared.CheckoutSession) error {
			processed = true
			return nil
		}).Times(1)
	s.expectWrites()

	first, err := s.service.Settle(context.Background(), settlement.Request{Key: sess.ID, Source: settlement.SourceCheckout})
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeCreated, first.Outcome)
	s.Equal(booking.StatusConfirmed, first.Booking.Status())
	s.Equal("pi_test_1", first.Booking.PaymentID())
	s.Equal(b.Reference(), first.Booking.Reference())
	s.Equal("evt_1", first.Event.ID)
	s.Require().Len(first.Notifications, 1)
	s.True(first.Notifications[0].Sent())

	second, err := s.service.Settle(context.Background(), settlement.Request{Key: sess.ID, Source: settlement.SourceCheckout})
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeAlreadyProcessed, second.Outcome)
	s.True(errs.Is(second.Outcome.Err(), errs.ErrAlreadyProcessed))
}

func (s *SettlementServiceTestSuite) TestSettle_DirectCreatesOnce() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	s.expectWrites()

	req := settlement.Request{Key: "idem-1", Source: settlement.SourceDirect, Booking: b}
	first, err := s.service.Settle(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeCreated, first.Outcome)
	s.Equal(booking.StatusPending, first.Booking.Status())

	second, err := s.service.Settle(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeAlreadyProcessed, second.Outcome)
}

func (s *SettlementServiceTestSuite) TestSettle_ConcurrentSameKey() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	entered := make(chan struct{})
	release := make(chan struct{})

	s.ledger.EXPECT().AppendBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *booking.Booking) (shared.LedgerRow, error) {
			close(entered)
			<-release
			return shared.LedgerRow{Range: "Bookings!A2:Q2"}, nil
		}).Times(1)
	s.calendar.EXPECT().CreateSessionEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(session.Event{ID: "evt_1"}, nil).Times(1)
	s.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.publisher.EXPECT().PublishSettled(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	req := settlement.Request{Key: "idem-concurrent", Source: settlement.SourceDirect, Booking: b}

	type outcome struct {
		res *settlement.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := s.service.Settle(context.Background(), req)
		done <- outcome{res, err}
	}()

	<-entered
	concurrent, err := s.service.Settle(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeAlreadyProcessing, concurrent.Outcome)
	s.Nil(concurrent.Booking)

	close(release)
	first := <-done
	s.Require().NoError(first.err)
	s.Equal(settlement.OutcomeCreated, first.res.Outcome)
	s.Empty(s.locks.Snapshot())
}

func (s *SettlementServiceTestSuite) TestSettle_UnpaidSession() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	sess := s.paidSession(b)
	sess.PaymentStatus = "unpaid"

	s.payments.EXPECT().RetrieveSession(gomock.Any(), sess.ID).Return(sess, nil).Times(2)

	for range 2 {
		res, err := s.service.Settle(context.Background(), settlement.Request{Key: sess.ID, Source: settlement.SourceCheckout})
		s.Nil(res)
		s.True(errs.Is(err, errs.ErrPaymentNotCompleted), "got %v", err)
	}
	s.Empty(s.locks.Snapshot())
}

func (s *SettlementServiceTestSuite) TestSettle_LedgerFailure() {
	b := builder.NewBookingBuilder().MustBuildDomain()

	s.ledger.EXPECT().AppendBooking(gomock.Any(), gomock.Any()).
		Return(shared.LedgerRow{}, errors.New("sheets: 503")).Times(1)
	s.calendar.EXPECT().CreateSessionEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(session.Event{ID: "evt_1"}, nil).Times(1)
	s.mailer.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]string) error {
			s.Equal(b.Reference(), fields["Booking reference"])
			return nil
		}).Times(1)

	res, err := s.service.Settle(context.Background(), settlement.Request{Key: "idem-fail", Source: settlement.SourceDirect, Booking: b})
	s.Nil(res)
	s.True(errs.Is(err, errs.ErrCollaborator), "got %v", err)
	s.Empty(s.locks.Snapshot())
}

func (s *SettlementServiceTestSuite) TestSettle_EmailFailureIsBestEffort() {
	b := builder.NewBookingBuilder().MustBuildDomain()

	s.ledger.EXPECT().AppendBooking(gomock.Any(), gomock.Any()).Return(shared.LedgerRow{}, nil).Times(1)
	s.calendar.EXPECT().CreateSessionEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(session.Event{ID: "evt_1"}, nil).Times(1)
	s.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(1)
	s.publisher.EXPECT().PublishSettled(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)

	res, err := s.service.Settle(context.Background(), settlement.Request{Key: "idem-mail", Source: settlement.SourceDirect, Booking: b})
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeCreated, res.Outcome)
	s.Require().Len(res.Notifications, 1)
	s.False(res.Notifications[0].Sent())
}

func (s *SettlementServiceTestSuite) TestSettle_StaleLockIsReaped() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	req := settlement.Request{Key: "idem-crashed", Source: settlement.SourceDirect, Booking: b}

	// A lock left behind by a crashed attempt.
	_, ok := s.locks.TryAcquire(req.Key)
	s.Require().True(ok)

	res, err := s.service.Settle(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeAlreadyProcessing, res.Outcome)

	s.clock.Add(5*time.Minute + time.Second)
	s.Equal([]string{req.Key}, s.locks.Sweep())

	s.expectWrites()
	res, err = s.service.Settle(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeCreated, res.Outcome)
}

func (s *SettlementServiceTestSuite) TestSettle_ReapedHolderDoesNotReleaseRetry() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	req := settlement.Request{Key: "idem-slow", Source: settlement.SourceDirect, Booking: b}

	// A slow attempt whose lock is reaped while it is still running.
	slow, ok := s.locks.TryAcquire(req.Key)
	s.Require().True(ok)
	s.clock.Add(5*time.Minute + time.Second)
	s.Require().Equal([]string{req.Key}, s.locks.Sweep())

	retry, ok := s.locks.TryAcquire(req.Key)
	s.Require().True(ok)
	s.False(s.locks.Release(req.Key, slow))

	res, err := s.service.Settle(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(settlement.OutcomeAlreadyProcessing, res.Outcome)

	s.True(s.locks.Release(req.Key, retry))
	s.Empty(s.locks.Snapshot())
}

func (s *SettlementServiceTestSuite) TestSettle_Validation() {
	_, err := s.service.Settle(context.Background(), settlement.Request{Source: settlement.SourceDirect})
	s.True(errs.Is(err, errs.ErrValidation))

	_, err = s.service.Settle(context.Background(), settlement.Request{Key: "k", Source: settlement.SourceDirect})
	s.True(errs.Is(err, errs.ErrValidation))
	s.Empty(s.locks.Snapshot())
}
