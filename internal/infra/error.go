package infra

import (
	"errors"
	"log/slog"

	"restaurant-reservations/internal/pkg/errs"
)

type SlotErrorKind string

type SlotError struct {
	Kind SlotErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e SlotError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e SlotError) Unwrap() error {
	return e.err
}

// WrapSlotErr logs backend failures and wraps err with its kind. A missing
// slot is expected on first start and is not logged.
func WrapSlotErr(slogger *slog.Logger, kind SlotErrorKind, msg string, err error) error {
	if kind != KindNotFound {
		slogger.Error("Slot error: "+msg, slog.String("kind", string(kind)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return SlotError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind SlotErrorKind) bool {
	var e SlotError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound       SlotErrorKind = "NOT_FOUND"
	KindBackendFailure SlotErrorKind = "BACKEND_FAILURE"
	KindInvalidKey     SlotErrorKind = "INVALID_KEY"
)
