package usecase

import (
	"context"
	"slices"

	"restaurant-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

// Create stores a new reservation with a fresh id, arrived=false and the
// current time as createdAt. The returned reservation is valid even when
// the error is marked errs.ErrPersistFailed. Nothing is created while the
// slot is unavailable.
func (s *ReservationStore) Create(ctx context.Context, details reservation.Details) (reservation.Reservation, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.ensureLoadedLocked(ctx, "create"); err != nil {
		return reservation.Reservation{}, err
	}

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	r := reservation.NewReservation(id, details, s.clock.Now())
	s.items = append(s.items, r)

	return r.Snapshot(), s.persistLocked(ctx, "create")
}

func (s *ReservationStore) Update(ctx context.Context, id uuid.UUID, p reservation.Patch) error {
	return s.mutate(ctx, "update", id, func(r *reservation.Reservation) {
		r.Apply(p)
	})
}

func (s *ReservationStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.ensureLoadedLocked(ctx, "delete"); err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items = slices.Delete(s.items, i, i+1)

	return s.persistLocked(ctx, "delete")
}

func (s *ReservationStore) MarkArrived(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, "mark_arrived", id, (*reservation.Reservation).MarkArrived)
}

func (s *ReservationStore) Complete(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, "complete", id, (*reservation.Reservation).Complete)
}

// mutate applies fn to the reservation with id in place. Unknown ids leave
// the collection and the slot untouched.
func (s *ReservationStore) mutate(ctx context.Context, op string, id uuid.UUID, fn func(*reservation.Reservation)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.ensureLoadedLocked(ctx, op); err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	fn(s.items[i])

	return s.persistLocked(ctx, op)
}
