package converter

import (
	"bytes"
	"encoding/json"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/errs"
)

type DecodeResult struct {
	Reservations []*reservation.Reservation
	// Skipped holds one error per record that could not be restored.
	Skipped []error
}

// EncodeCollection serializes the whole collection as one JSON array.
func EncodeCollection(rs []*reservation.Reservation) ([]byte, error) {
	records := make([]ReservationRecord, 0, len(rs))
	for _, r := range rs {
		records = append(records, ReservationToRecord(r))
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return nil, errs.Wrap(err, "encode reservations")
	}
	return blob, nil
}

// DecodeCollection restores a collection. An empty or null blob is an empty
// collection. A blob that is not a JSON array fails as a whole; individual
// records that cannot be restored are skipped and reported.
func DecodeCollection(blob []byte) (DecodeResult, error) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return DecodeResult{Reservations: []*reservation.Reservation{}}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return DecodeResult{}, errs.Mark(errs.Wrap(err, "decode reservations"), errs.ErrCorruptSnapshot)
	}

	result := DecodeResult{Reservations: make([]*reservation.Reservation, 0, len(raw))}
	for i, item := range raw {
		var rec ReservationRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			result.Skipped = append(result.Skipped, errs.Wrapf(err, "record %d", i))
			continue
		}
		r, err := RecordToReservation(rec)
		if err != nil {
			result.Skipped = append(result.Skipped, errs.Wrapf(err, "record %d", i))
			continue
		}
		result.Reservations = append(result.Reservations, r)
	}
	return result, nil
}
