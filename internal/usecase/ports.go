package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

// Slot is a named, durable key-value cell holding one serialized blob.
// Load reports a missing key with infra.KindNotFound.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// ReservationCommands mutate the collection. Unknown ids are silently
// ignored. An error marked errs.ErrPersistFailed means the change is live
// in memory but did not reach the slot.
type ReservationCommands interface {
	Create(ctx context.Context, details reservation.Details) (reservation.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, p reservation.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkArrived(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
}

// ReservationQueries compute read-only views. Time-dependent views take
// now explicitly.
type ReservationQueries interface {
	Get(id uuid.UUID) (reservation.Reservation, bool)
	All() []reservation.Reservation
	ListByDate(date reservation.Date) []reservation.Reservation
	ListToday(now time.Time) []reservation.Reservation
	ListPast(now time.Time) []reservation.Reservation
	IsLate(r reservation.Reservation, now time.Time) bool
	Search(criteria reservation.Criteria) []reservation.Reservation
	SearchPast(now time.Time, text string) []reservation.Reservation
	Calendar(now time.Time, year int, month time.Month) []reservation.CalendarDay
}
