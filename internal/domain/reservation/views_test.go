//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 10, hour, minute, 0, 0, time.UTC)
}

func TestReservation_IsLate(t *testing.T) {
	testCases := []struct {
		name    string
		date    string
		arrived bool
		now     time.Time
		want    bool
	}{
		{name: "31 minutes past without arrival is late", date: "2025-01-10", now: at(18, 31), want: true},
		{name: "29 minutes past is within the window", date: "2025-01-10", now: at(18, 29)},
		{name: "exactly 30 minutes past is not late yet", date: "2025-01-10", now: at(18, 30)},
		{name: "arrived guest is never late", date: "2025-01-10", arrived: true, now: at(23, 0)},
		{name: "yesterday's booking is not late", date: "2025-01-09", now: at(23, 0)},
		{name: "tomorrow's booking is not late", date: "2025-01-11", now: at(23, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().
				WithDate(tc.date).
				WithTime("18:00").
				WithArrived(tc.arrived).
				BuildDomain()

			assert.Equal(t, tc.want, r.IsLate(tc.now))
		})
	}
}

func TestReservation_IsLate_MalformedTime(t *testing.T) {
	r := builder.NewReservationBuilder().WithDate("2025-01-10").WithTime("evening").BuildDomain()

	assert.False(t, r.IsLate(at(23, 59)))
}

func TestReservation_IsToday(t *testing.T) {
	r := builder.NewReservationBuilder().WithDate("2025-01-10").BuildDomain()

	assert.True(t, r.IsToday(at(0, 0)))
	assert.True(t, r.IsToday(at(23, 59)))
	assert.False(t, r.IsToday(at(23, 59).Add(time.Minute)))
}

func TestReservation_IsPast(t *testing.T) {
	now := at(12, 0)

	testCases := []struct {
		name   string
		date   string
		status reservation.Status
		want   bool
	}{
		{name: "yesterday confirmed", date: "2025-01-09", status: reservation.StatusConfirmed, want: true},
		{name: "yesterday cancelled", date: "2025-01-09", status: reservation.StatusCancelled, want: true},
		{name: "today confirmed", date: "2025-01-10", status: reservation.StatusConfirmed, want: false},
		{name: "today completed", date: "2025-01-10", status: reservation.StatusCompleted, want: true},
		{name: "tomorrow completed", date: "2025-01-11", status: reservation.StatusCompleted, want: true},
		{name: "tomorrow pending", date: "2025-01-11", status: reservation.StatusPending, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().WithDate(tc.date).WithStatus(tc.status).BuildDomain()
			assert.Equal(t, tc.want, r.IsPast(now))
		})
	}
}
