package usecase

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

func (s *ReservationStore) Get(id uuid.UUID) (reservation.Reservation, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return reservation.Reservation{}, false
	}
	return s.items[i].Snapshot(), true
}

// All returns every reservation in insertion order.
func (s *ReservationStore) All() []reservation.Reservation {
	return s.collect(func(*reservation.Reservation) bool { return true })
}

func (s *ReservationStore) ListByDate(date reservation.Date) []reservation.Reservation {
	return s.collect(func(r *reservation.Reservation) bool {
		return r.Date().Equal(date)
	})
}

// ListToday returns today's bookings that are still open; completed ones
// move to history.
func (s *ReservationStore) ListToday(now time.Time) []reservation.Reservation {
	return s.collect(func(r *reservation.Reservation) bool {
		return r.IsToday(now) && !r.IsCompleted()
	})
}

func (s *ReservationStore) ListPast(now time.Time) []reservation.Reservation {
	return s.collect(func(r *reservation.Reservation) bool {
		return r.IsPast(now)
	})
}

func (s *ReservationStore) IsLate(r reservation.Reservation, now time.Time) bool {
	return r.IsLate(now)
}

// Search filters by criteria and orders the result by date, then time.
func (s *ReservationStore) Search(criteria reservation.Criteria) []reservation.Reservation {
	rs := s.collect(criteria.Matches)
	reservation.SortBySchedule(rs)
	return rs
}

// SearchPast runs a text search over the history view, keeping its order.
func (s *ReservationStore) SearchPast(now time.Time, text string) []reservation.Reservation {
	return s.collect(func(r *reservation.Reservation) bool {
		return r.IsPast(now) && r.MatchesText(text)
	})
}

func (s *ReservationStore) Calendar(now time.Time, year int, month time.Month) []reservation.CalendarDay {
	return reservation.MonthGrid(now, year, month, s.All())
}

func (s *ReservationStore) collect(keep func(*reservation.Reservation) bool) []reservation.Reservation {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]reservation.Reservation, 0, len(s.items))
	for _, r := range s.items {
		if keep(r) {
			out = append(out, r.Snapshot())
		}
	}
	return out
}
