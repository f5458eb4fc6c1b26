package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"albarkah/models"
)

// FormatRupiah renders an amount in the smallest currency unit with dot
// thousand separators, e.g. 67000000 -> "Rp 67.000.000".
func FormatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	return "Rp " + sb.String()
}

func passportLabel(s models.PassportStatus) string {
	switch s {
	case models.PassportYes:
		return "Sudah Ada"
	case models.PassportNo:
		return "Belum Ada"
	default:
		return "Sudah Expired"
	}
}

func experienceLabel(firstTime bool) string {
	if firstTime {
		return "Jamaah Pertama Kali"
	}
	return "Sudah Pernah Sebelumnya"
}

// BuildWhatsAppLink renders the confirmation message for a freshly created
// lead and wraps it in a wa.me deep link to the admin number. Pure string
// templating, no network call.
func BuildWhatsAppLink(adminNumber string, lead *models.Lead, total int64) string {
	notes := lead.HealthNotes
	if notes == "" {
		notes = "-"
	}

	message := "*KONFIRMASI PENDAFTARAN AL-BARKAH*\n\n" +
		fmt.Sprintf("Kode Booking: *%s*\n", lead.CheckoutCode) +
		"--------------------------------\n" +
		fmt.Sprintf("Paket: *%s*\n", lead.PackageName) +
		fmt.Sprintf("Nama Jamaah: %s\n", lead.FullName) +
		fmt.Sprintf("Nomor WA: %s\n", lead.WhatsappNumber) +
		fmt.Sprintf("Jumlah Pax: %d\n", lead.NumberOfPax) +
		fmt.Sprintf("Total Estimasi: %s\n\n", FormatRupiah(total)) +
		"*DETAIL TAMBAHAN:*\n" +
		fmt.Sprintf("- Paspor: %s\n", passportLabel(lead.HasPassport)) +
		fmt.Sprintf("- Pengalaman: %s\n", experienceLabel(lead.IsFirstTime)) +
		fmt.Sprintf("- Kamar: %s\n", lead.RoomPreference) +
		fmt.Sprintf("- Catatan Medis: %s\n\n", notes) +
		"Mohon dibantu proses selanjutnya, Jazakallah Khairan."

	return fmt.Sprintf("https://wa.me/%s?text=%s", adminNumber, url.QueryEscape(message))
}
