package infra

import (
	"errors"
	"log/slog"

	"tutor-booking/internal/pkg/errs"
)

type ErrorKind string

// CollaboratorError is returned by every external adapter (calendar, sheet,
// payment provider, mail relay, broker, database).
type CollaboratorError struct {
	Kind         ErrorKind
	Collaborator string
	msg          string
	err          error // wrapped low-level error
}

func (e CollaboratorError) Error() string {
	prefix := string(e.Kind) + " [" + e.Collaborator + "]: " + e.msg
	if e.err != nil {
		return prefix + ": " + e.err.Error()
	}
	return prefix
}

func (e CollaboratorError) Unwrap() error {
	return e.err
}

func WrapCollaboratorErr(slogger *slog.Logger, collaborator string, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("collaborator", collaborator),
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Collaborator error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	wrapped := CollaboratorError{Kind: kind, Collaborator: collaborator, msg: msg, err: err}
	if kind == KindNotConfigured {
		return errs.Mark(wrapped, errs.ErrConfiguration)
	}
	return errs.Mark(wrapped, errs.ErrCollaborator)
}

func IsKind(err error, kind ErrorKind) bool {
	var e CollaboratorError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotConfigured ErrorKind = "NOT_CONFIGURED"
	KindUnavailable   ErrorKind = "UNAVAILABLE"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindRejected      ErrorKind = "REJECTED"
	KindDBFailure     ErrorKind = "DB_FAILURE"
)
