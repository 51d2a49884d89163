package reservation

import (
	"time"

	"restaurant-reservations/internal/pkg/patch"
	"restaurant-reservations/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Details carries every caller-supplied field of a booking. Nothing here is
// validated: required fields and formats are checked by the caller.
type Details struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PartySize     int
	Date          Date
	Time          TimeOfDay
	TableNumber   *int
	Notes         *string
	Status        Status
}

// Patch lists the fields to overwrite; nil fields are left untouched.
// A TableNumber of 0 or an empty Notes clears the optional field.
// Arrived only ever moves false to true.
type Patch struct {
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	PartySize     *int
	Date          *Date
	Time          *TimeOfDay
	TableNumber   *int
	Notes         *string
	Status        *Status
	Arrived       *bool
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

type Reservation struct {
	id        uuid.UUID
	details   Details
	arrived   bool
	createdAt time.Time
}

func NewReservation(id uuid.UUID, d Details, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		details:   cloneDetails(d),
		arrived:   false,
		createdAt: createdAt,
	}
}

func ReconstructReservation(id uuid.UUID, d Details, arrived bool, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		details:   cloneDetails(d),
		arrived:   arrived,
		createdAt: createdAt,
	}
}

// Apply merges p into r in place. id and createdAt are never touched.
func (r *Reservation) Apply(p Patch) {
	d := &r.details
	d.CustomerName = patch.Coalesce(p.CustomerName, d.CustomerName)
	d.CustomerPhone = patch.Coalesce(p.CustomerPhone, d.CustomerPhone)
	d.CustomerEmail = patch.Coalesce(p.CustomerEmail, d.CustomerEmail)
	d.PartySize = patch.Coalesce(p.PartySize, d.PartySize)
	d.Date = patch.Coalesce(p.Date, d.Date)
	d.Time = patch.Coalesce(p.Time, d.Time)
	d.TableNumber = patch.Optional(p.TableNumber, d.TableNumber)
	d.Notes = patch.Optional(p.Notes, d.Notes)
	d.Status = patch.Coalesce(p.Status, d.Status)

	if patch.Coalesce(p.Arrived, false) {
		r.arrived = true
	}
}

func (r *Reservation) MarkArrived() {
	r.Apply(Patch{Arrived: ptr.Of(true)})
}

func (r *Reservation) Complete() {
	completed := StatusCompleted
	r.Apply(Patch{Status: &completed})
}

// Snapshot returns a copy that shares no memory with r.
func (r *Reservation) Snapshot() Reservation {
	return Reservation{
		id:        r.id,
		details:   cloneDetails(r.details),
		arrived:   r.arrived,
		createdAt: r.createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Details() Details      { return cloneDetails(r.details) }
func (r *Reservation) CustomerName() string  { return r.details.CustomerName }
func (r *Reservation) CustomerPhone() string { return r.details.CustomerPhone }
func (r *Reservation) CustomerEmail() string { return r.details.CustomerEmail }
func (r *Reservation) PartySize() int        { return r.details.PartySize }
func (r *Reservation) Date() Date            { return r.details.Date }
func (r *Reservation) Time() TimeOfDay       { return r.details.Time }
func (r *Reservation) TableNumber() *int     { return ptr.Clone(r.details.TableNumber) }
func (r *Reservation) Notes() *string        { return ptr.Clone(r.details.Notes) }
func (r *Reservation) Status() Status        { return r.details.Status }
func (r *Reservation) Arrived() bool         { return r.arrived }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) IsCompleted() bool     { return r.details.Status == StatusCompleted }

func cloneDetails(d Details) Details {
	d.TableNumber = ptr.Clone(d.TableNumber)
	d.Notes = ptr.Clone(d.Notes)
	return d
}
