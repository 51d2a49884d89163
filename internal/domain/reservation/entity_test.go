//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/ptr"
	"restaurant-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(reservation.Reservation{}, reservation.Date{}, reservation.TimeOfDay{}),
}

func TestNewReservation(t *testing.T) {
	createdAt := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	details := builder.NewReservationBuilder().BuildDetails()

	actual := reservation.NewReservation(id, details, createdAt)

	assert.Equal(t, id, actual.ID())
	assert.Equal(t, createdAt, actual.CreatedAt())
	assert.False(t, actual.Arrived())
	if diff := cmp.Diff(details, actual.Details(), cmpOpts...); diff != "" {
		t.Errorf("Details mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReservation_NoValidation(t *testing.T) {
	r := reservation.NewReservation(uuid.New(), reservation.Details{
		CustomerName: "",
		Date:         reservation.NewDate("not-a-date"),
		Time:         reservation.NewTimeOfDay("soon"),
	}, time.Now())

	assert.Equal(t, "", r.CustomerName())
	assert.Equal(t, "not-a-date", r.Date().String())
}

func TestReservation_Apply(t *testing.T) {
	t.Run("overwrites only given fields", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildDomain()
		before := r.Snapshot()

		newDate := reservation.NewDate("2025-02-14")
		r.Apply(reservation.Patch{
			CustomerName: ptr.Of("Ivo Horvat"),
			PartySize:    ptr.Of(2),
			Date:         &newDate,
		})

		assert.Equal(t, "Ivo Horvat", r.CustomerName())
		assert.Equal(t, 2, r.PartySize())
		assert.Equal(t, "2025-02-14", r.Date().String())
		assert.Equal(t, before.CustomerPhone(), r.CustomerPhone())
		assert.Equal(t, before.Time(), r.Time())
		assert.Equal(t, before.ID(), r.ID())
		assert.Equal(t, before.CreatedAt(), r.CreatedAt())
	})

	t.Run("any status can be set", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted).BuildDomain()

		pending := reservation.StatusPending
		r.Apply(reservation.Patch{Status: &pending})

		assert.Equal(t, reservation.StatusPending, r.Status())
	})

	t.Run("zero table number and empty notes clear optionals", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()

		r.Apply(reservation.Patch{TableNumber: ptr.Of(0), Notes: ptr.Of("")})

		assert.Nil(t, r.TableNumber())
		assert.Nil(t, r.Notes())
	})

	t.Run("arrived never resets", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithArrived(true).BuildDomain()

		r.Apply(reservation.Patch{Arrived: ptr.Of(false)})

		assert.True(t, r.Arrived())
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		before := r.Snapshot()

		p := reservation.Patch{}
		r.Apply(p)

		assert.True(t, p.IsEmpty())
		if diff := cmp.Diff(before, r.Snapshot(), cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReservation_MarkArrivedAndComplete(t *testing.T) {
	r := builder.NewReservationBuilder().BuildDomain()

	r.MarkArrived()
	assert.True(t, r.Arrived())
	assert.Equal(t, reservation.StatusConfirmed, r.Status())

	r.Complete()
	assert.Equal(t, reservation.StatusCompleted, r.Status())
	assert.True(t, r.IsCompleted())
}

func TestReservation_SnapshotIsolation(t *testing.T) {
	r := builder.NewReservationBuilder().BuildDomain()
	snap := r.Snapshot()

	table := r.TableNumber()
	*table = 99
	r.Apply(reservation.Patch{TableNumber: ptr.Of(12)})

	assert.Equal(t, 7, *snap.TableNumber())
	assert.Equal(t, 12, *r.TableNumber())
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		in      string
		want    reservation.Status
		wantErr bool
	}{
		{in: "confirmed", want: reservation.StatusConfirmed},
		{in: "Pending", want: reservation.StatusPending},
		{in: " cancelled ", want: reservation.StatusCancelled},
		{in: "completed", want: reservation.StatusCompleted},
		{in: "canceled", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := reservation.ParseStatus(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, reservation.StatusConfirmed.IsActive())
	assert.True(t, reservation.StatusPending.IsActive())
	assert.False(t, reservation.StatusCancelled.IsActive())
	assert.False(t, reservation.StatusCompleted.IsActive())
}
