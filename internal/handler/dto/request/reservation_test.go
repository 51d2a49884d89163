//go:build unit

package request_test

import (
	"testing"

	"restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/pkg/ptr"
	"restaurant-reservations/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationRequest_ToDomainNotes(t *testing.T) {
	tests := []struct {
		name  string
		notes *string
		want  *string
	}{
		{name: "absent", notes: nil, want: nil},
		{name: "empty", notes: ptr.Of(""), want: nil},
		{name: "whitespace only", notes: ptr.Of("  \t "), want: nil},
		{name: "trimmed", notes: ptr.Of("  window seat "), want: ptr.Of("window seat")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := builder.NewReservationBuilder().BuildCreateRequestDTO()
			req.Notes = tt.notes

			details, err := req.ToDomain()
			require.NoError(t, err)
			assert.Equal(t, tt.want, details.Notes)
		})
	}
}

func TestUpdateReservationRequest_ToPatchNotes(t *testing.T) {
	tests := []struct {
		name  string
		notes *string
		want  *string
	}{
		{name: "absent keeps current", notes: nil, want: nil},
		{name: "blank clears", notes: ptr.Of("   "), want: ptr.Of("")},
		{name: "trimmed", notes: ptr.Of(" birthday "), want: ptr.Of("birthday")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := request.UpdateReservationRequest{Notes: tt.notes}.ToPatch()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Notes)
		})
	}
}
