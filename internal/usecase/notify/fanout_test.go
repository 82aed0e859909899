//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/usecase/notify"
	sharedmock "tutor-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFanOut(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opening := session.Opening{Reference: "REF-ABC123", Organization: "esade", Subject: "Microeconomics"}

	t.Run("mails every registered tutor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockTutorDirectory(ctrl)
		mailer := sharedmock.NewMockMailer(ctrl)

		tutors := []string{"a@esade.edu", "b@esade.edu"}
		dir.EXPECT().TutorEmails("esade", "Microeconomics").Return(tutors)
		mailer.EXPECT().SendOpening(gomock.Any(), tutors, opening).Return(nil)

		res := notify.NewFanOut(dir, mailer, logger).Handle(context.Background(), opening)
		assert.True(t, res.Sent())
		assert.Equal(t, "a@esade.edu,b@esade.edu", res.To)
	})

	t.Run("no tutors sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockTutorDirectory(ctrl)
		mailer := sharedmock.NewMockMailer(ctrl)

		dir.EXPECT().TutorEmails("esade", "Microeconomics").Return(nil)

		res := notify.NewFanOut(dir, mailer, logger).Handle(context.Background(), opening)
		assert.Empty(t, res.To)
	})

	t.Run("in-process publisher runs fan-out in background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockTutorDirectory(ctrl)
		mailer := sharedmock.NewMockMailer(ctrl)

		dir.EXPECT().TutorEmails(gomock.Any(), gomock.Any()).Return([]string{"a@esade.edu"})
		mailer.EXPECT().SendOpening(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		ctx, cancel := context.WithCancel(context.Background())
		pub := notify.NewInProcessPublisher(notify.NewFanOut(dir, mailer, logger))
		assert.NoError(t, pub.PublishSettled(ctx, opening))
		cancel()
		pub.Wait()
	})
}
