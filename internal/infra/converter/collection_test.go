//go:build unit

package converter_test

import (
	"encoding/json"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra/converter"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(reservation.Reservation{}, reservation.Date{}, reservation.TimeOfDay{}),
}

func TestCollection_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 1, 2, 9, 30, 15, 123456789, time.UTC)
	original := []*reservation.Reservation{
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.CreatedAt = createdAt }).BuildDomain(),
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.TableNumber = nil
			b.Notes = nil
			b.Status = reservation.StatusCompleted
			b.Arrived = true
		}).BuildDomain(),
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Notes = new(string)
			b.CustomerEmail = ""
		}).BuildDomain(),
	}

	blob, err := converter.EncodeCollection(original)
	require.NoError(t, err)

	result, err := converter.DecodeCollection(blob)
	require.NoError(t, err)
	assert.Empty(t, result.Skipped)

	if diff := cmp.Diff(original, result.Reservations, cmpOpts...); diff != "" {
		t.Errorf("Collection mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeCollection_Format(t *testing.T) {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.TableNumber = nil
	}).BuildDomain()

	blob, err := converter.EncodeCollection([]*reservation.Reservation{r})
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(blob, &records))
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, r.ID().String(), rec["id"])
	assert.Equal(t, "Ana Kovač", rec["customerName"])
	assert.Equal(t, "2025-01-10", rec["date"])
	assert.Equal(t, "18:00", rec["time"])
	assert.Equal(t, "confirmed", rec["status"])
	assert.Equal(t, false, rec["arrived"])
	assert.Equal(t, "2025-01-02T09:30:00Z", rec["createdAt"])
	assert.NotContains(t, rec, "tableNumber")
}

func TestEncodeCollection_Empty(t *testing.T) {
	blob, err := converter.EncodeCollection(nil)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(blob))
}

func TestDecodeCollection_EmptySlot(t *testing.T) {
	for _, blob := range []string{"", "  ", "null", "[]"} {
		result, err := converter.DecodeCollection([]byte(blob))
		require.NoError(t, err, blob)
		assert.NotNil(t, result.Reservations)
		assert.Empty(t, result.Reservations)
	}
}

func TestDecodeCollection_Corrupt(t *testing.T) {
	for _, blob := range []string{"{", `{"id":"x"}`, "garbage"} {
		_, err := converter.DecodeCollection([]byte(blob))
		require.Error(t, err, blob)
		assert.True(t, errs.Is(err, errs.ErrCorruptSnapshot), blob)
	}
}

func TestDecodeCollection_MigratesPreviousRevision(t *testing.T) {
	// Written before "arrived" and "completed" existed.
	blob := `[
		{"id":"7d0f1f0e-8a43-4f5e-9a53-3c1a1f1c2b10","customerName":"Luka","customerPhone":"091",
		 "customerEmail":"","partySize":2,"date":"2024-12-31","time":"20:00","status":"confirmed",
		 "createdAt":"2024-12-20T10:00:00.000Z"},
		{"id":"0b6c5a52-1c1e-4a2f-b3de-5f58a5c1d9a1","customerName":"Iva","customerPhone":"",
		 "customerEmail":"iva@example.com","partySize":6,"date":"2025-01-01","time":"19:00",
		 "tableNumber":null,"notes":"birthday"}
	]`

	result, err := converter.DecodeCollection([]byte(blob))
	require.NoError(t, err)
	require.Empty(t, result.Skipped)
	require.Len(t, result.Reservations, 2)

	first := result.Reservations[0]
	assert.False(t, first.Arrived())
	assert.Equal(t, reservation.StatusConfirmed, first.Status())
	assert.Equal(t, time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC), first.CreatedAt().UTC())

	second := result.Reservations[1]
	assert.False(t, second.Arrived())
	assert.Equal(t, reservation.StatusConfirmed, second.Status())
	assert.Nil(t, second.TableNumber())
	assert.Equal(t, "birthday", *second.Notes())
	assert.True(t, second.CreatedAt().IsZero())
}

func TestDecodeCollection_SkipsUnrestorableRecords(t *testing.T) {
	good := builder.NewReservationBuilder().BuildDomain()
	goodBlob, err := converter.EncodeCollection([]*reservation.Reservation{good})
	require.NoError(t, err)

	var goodRecord json.RawMessage
	var arr []json.RawMessage
	require.NoError(t, json.Unmarshal(goodBlob, &arr))
	goodRecord = arr[0]

	blob := `[{"id":"not-a-uuid","customerName":"x"},` + string(goodRecord) + `,{"id":42}]`

	result, err := converter.DecodeCollection([]byte(blob))
	require.NoError(t, err)

	assert.Len(t, result.Skipped, 2)
	require.Len(t, result.Reservations, 1)
	assert.Equal(t, good.ID(), result.Reservations[0].ID())
}
