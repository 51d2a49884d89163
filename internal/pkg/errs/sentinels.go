package errs

import "errors"

// Sentinel errors shared between the store and its adapters
var (
	// Persistence errors
	ErrPersistFailed   = errors.New("reservation state not persisted")
	ErrSlotUnavailable = errors.New("persistence slot unavailable")
	ErrCorruptSnapshot = errors.New("persisted reservations could not be decoded")
	ErrUnknownSlotKind = errors.New("unknown slot backend")

	ErrInvalidMonth = errors.New("invalid month")
)
