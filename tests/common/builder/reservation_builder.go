//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/pkg/ptr"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PartySize     int
	Date          string
	Time          string
	TableNumber   *int
	Notes         *string
	Status        reservation.Status
	Arrived       bool
	CreatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		CustomerName:  "Ana Kovač",
		CustomerPhone: "+385 91 555 0101",
		CustomerEmail: "ana@example.com",
		PartySize:     4,
		Date:          "2025-01-10",
		Time:          "18:00",
		TableNumber:   ptr.Of(7),
		Notes:         ptr.Of("window seat"),
		Status:        reservation.StatusConfirmed,
		CreatedAt:     time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithTime(t string) *ReservationBuilder {
	b.Time = t
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithName(name string) *ReservationBuilder {
	b.CustomerName = name
	return b
}

func (b *ReservationBuilder) WithArrived(arrived bool) *ReservationBuilder {
	b.Arrived = arrived
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDetails() reservation.Details {
	return reservation.Details{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		PartySize:     b.PartySize,
		Date:          reservation.NewDate(b.Date),
		Time:          reservation.NewTimeOfDay(b.Time),
		TableNumber:   ptr.Clone(b.TableNumber),
		Notes:         ptr.Clone(b.Notes),
		Status:        b.Status,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(b.ID, b.BuildDetails(), b.Arrived, b.CreatedAt)
}

func (b *ReservationBuilder) BuildSnapshot() reservation.Reservation {
	return b.BuildDomain().Snapshot()
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		PartySize:     b.PartySize,
		Date:          b.Date,
		Time:          b.Time,
		TableNumber:   ptr.Clone(b.TableNumber),
		Notes:         ptr.Clone(b.Notes),
		Status:        b.Status.String(),
	}
}
