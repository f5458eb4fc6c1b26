package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"albarkah/models"
	"albarkah/services/checkout"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		room  models.RoomPreference
		pax   int
		want  int64
	}{
		{
			name:  "quad single pax has no surcharge",
			price: 28500000,
			room:  models.RoomQuad,
			pax:   1,
			want:  28500000,
		},
		{
			name:  "triple surcharge applies per pax",
			price: 28500000,
			room:  models.RoomTriple,
			pax:   3,
			want:  93000000,
		},
		{
			name:  "double room for two",
			price: 28500000,
			room:  models.RoomDouble,
			pax:   2,
			want:  67000000,
		},
		{
			name:  "zero pax is floored to one",
			price: 36000000,
			room:  models.RoomQuad,
			pax:   0,
			want:  36000000,
		},
		{
			name:  "negative pax is floored to one",
			price: 36000000,
			room:  models.RoomDouble,
			pax:   -3,
			want:  41000000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.Quote(tt.price, tt.room, tt.pax))
		})
	}
}

func TestQuoteLead(t *testing.T) {
	t.Run("resolves package from catalog", func(t *testing.T) {
		total, ok := checkout.QuoteLead(models.Lead{
			PackageID:      "1",
			RoomPreference: models.RoomDouble,
			NumberOfPax:    2,
		})
		require.True(t, ok)
		assert.Equal(t, int64(67000000), total)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, ok := checkout.QuoteLead(models.Lead{PackageID: "missing"})
		assert.False(t, ok)
	})
}

func TestRoomSurcharge(t *testing.T) {
	assert.Equal(t, int64(0), checkout.RoomSurcharge(models.RoomQuad))
	assert.Equal(t, int64(2500000), checkout.RoomSurcharge(models.RoomTriple))
	assert.Equal(t, int64(5000000), checkout.RoomSurcharge(models.RoomDouble))
	assert.Equal(t, int64(0), checkout.RoomSurcharge(models.RoomPreference("SUITE")))
}
