package converter

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReservationRecord is the persisted shape of one reservation. Field names
// follow the browser collection format so existing slots stay readable.
// Arrived and CreatedAt are loose on purpose: older revisions did not
// write them and migrateRecord fills the gaps.
type ReservationRecord struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	PartySize     int     `json:"partySize"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	TableNumber   *int    `json:"tableNumber,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
	Arrived       *bool   `json:"arrived"`
	CreatedAt     string  `json:"createdAt"`
}

// Records written before the status enum grew "completed" and "pending"
// always carried one of the remaining values; anything unreadable falls
// back to the form default.
const defaultStatus = reservation.StatusConfirmed

func ReservationToRecord(r *reservation.Reservation) ReservationRecord {
	arrived := r.Arrived()
	return ReservationRecord{
		ID:            r.ID().String(),
		CustomerName:  r.CustomerName(),
		CustomerPhone: r.CustomerPhone(),
		CustomerEmail: r.CustomerEmail(),
		PartySize:     r.PartySize(),
		Date:          r.Date().String(),
		Time:          r.Time().String(),
		TableNumber:   r.TableNumber(),
		Notes:         r.Notes(),
		Status:        r.Status().String(),
		Arrived:       &arrived,
		CreatedAt:     r.CreatedAt().Format(time.RFC3339Nano),
	}
}

// RecordToReservation applies migrateRecord and rebuilds the entity.
// Only a missing or malformed id is fatal for the record.
func RecordToReservation(rec ReservationRecord) (*reservation.Reservation, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, errs.Wrapf(err, "record id %q", rec.ID)
	}

	rec = migrateRecord(rec)

	details := reservation.Details{
		CustomerName:  rec.CustomerName,
		CustomerPhone: rec.CustomerPhone,
		CustomerEmail: rec.CustomerEmail,
		PartySize:     rec.PartySize,
		Date:          reservation.NewDate(rec.Date),
		Time:          reservation.NewTimeOfDay(rec.Time),
		TableNumber:   rec.TableNumber,
		Notes:         rec.Notes,
		Status:        reservation.Status(rec.Status),
	}

	return reservation.ReconstructReservation(id, details, *rec.Arrived, parseCreatedAt(rec.CreatedAt)), nil
}

// migrateRecord fills field-level defaults for records written by older
// revisions of the collection format.
func migrateRecord(rec ReservationRecord) ReservationRecord {
	if rec.Arrived == nil {
		arrived := false
		rec.Arrived = &arrived
	}
	if !reservation.Status(rec.Status).IsValid() {
		rec.Status = defaultStatus.String()
	}
	return rec
}

func parseCreatedAt(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
