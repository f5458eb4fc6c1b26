package checkout_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"albarkah/models"
	"albarkah/services/checkout"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{950, "Rp 950"},
		{2500000, "Rp 2.500.000"},
		{28500000, "Rp 28.500.000"},
		{67000000, "Rp 67.000.000"},
		{250000000, "Rp 250.000.000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.FormatRupiah(tt.amount))
		})
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	lead := &models.Lead{
		CheckoutCode:   "ALB-K9X2P1",
		PackageName:    "Umroh Reguler Syawal",
		FullName:       "Ahmad Fauzi",
		WhatsappNumber: "6281234567890",
		NumberOfPax:    2,
		HasPassport:    models.PassportYes,
		IsFirstTime:    true,
		RoomPreference: models.RoomDouble,
	}

	link := checkout.BuildWhatsAppLink("6281553335534", lead, 67000000)
	require.True(t, strings.HasPrefix(link, "https://wa.me/6281553335534?text="))

	encoded := strings.TrimPrefix(link, "https://wa.me/6281553335534?text=")
	message, err := url.QueryUnescape(encoded)
	require.NoError(t, err)

	assert.Contains(t, message, "*KONFIRMASI PENDAFTARAN AL-BARKAH*")
	assert.Contains(t, message, "Kode Booking: *ALB-K9X2P1*")
	assert.Contains(t, message, "Paket: *Umroh Reguler Syawal*")
	assert.Contains(t, message, "Nama Jamaah: Ahmad Fauzi")
	assert.Contains(t, message, "Jumlah Pax: 2")
	assert.Contains(t, message, "Total Estimasi: Rp 67.000.000")
	assert.Contains(t, message, "- Paspor: Sudah Ada")
	assert.Contains(t, message, "- Pengalaman: Jamaah Pertama Kali")
	assert.Contains(t, message, "- Catatan Medis: -")
	assert.Contains(t, message, "Jazakallah Khairan")
}

func TestBuildWhatsAppLinkHealthNotes(t *testing.T) {
	lead := &models.Lead{
		CheckoutCode:   "ALB-M7Z8L3",
		PackageName:    "Umroh Plus Turki",
		FullName:       "Siti Aminah",
		WhatsappNumber: "6281298765432",
		NumberOfPax:    1,
		HasPassport:    models.PassportExpired,
		IsFirstTime:    false,
		RoomPreference: models.RoomQuad,
		HealthNotes:    "Alergi seafood",
	}

	link := checkout.BuildWhatsAppLink("6281553335534", lead, 36000000)
	message, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/6281553335534?text="))
	require.NoError(t, err)

	assert.Contains(t, message, "- Paspor: Sudah Expired")
	assert.Contains(t, message, "- Pengalaman: Sudah Pernah Sebelumnya")
	assert.Contains(t, message, "- Catatan Medis: Alergi seafood")
}
