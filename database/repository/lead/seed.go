package leadRepo

import (
	"time"

	"albarkah/models"
)

// SeedLeads returns the illustrative dataset installed on first run so the
// admin dashboard is never empty out of the box.
func SeedLeads() []models.Lead {
	now := time.Now()
	day := 24 * time.Hour

	return []models.Lead{
		{
			ID:             "seed-1",
			CheckoutCode:   "ALB-K9X2P1",
			PackageID:      "1",
			PackageName:    "Umroh Reguler Syawal",
			FullName:       "Ahmad Subarjo",
			WhatsappNumber: "081234567890",
			NumberOfPax:    2,
			HasPassport:    models.PassportYes,
			IsFirstTime:    true,
			RoomPreference: models.RoomDouble,
			Status:         models.LeadCompleted,
			PaymentStatus:  models.PaymentPaid,
			AmountPaid:     57000000,
			CreatedAt:      now,
		},
		{
			ID:             "seed-2",
			CheckoutCode:   "ALB-M7Z8L3",
			PackageID:      "3",
			PackageName:    "Haji Furoda 2024",
			FullName:       "Hj. Siti Aminah",
			WhatsappNumber: "08567891234",
			NumberOfPax:    1,
			HasPassport:    models.PassportYes,
			IsFirstTime:    false,
			RoomPreference: models.RoomQuad,
			Status:         models.LeadFollowedUp,
			PaymentStatus:  models.PaymentPartial,
			AmountPaid:     100000000,
			CreatedAt:      now.Add(-1 * day),
		},
		{
			ID:             "seed-3",
			CheckoutCode:   "ALB-R2W9Q4",
			PackageID:      "2",
			PackageName:    "Umroh Plus Turki",
			FullName:       "Budi Hartono",
			WhatsappNumber: "08771234567",
			NumberOfPax:    4,
			HasPassport:    models.PassportNo,
			IsFirstTime:    true,
			RoomPreference: models.RoomQuad,
			Status:         models.LeadPending,
			PaymentStatus:  models.PaymentUnpaid,
			AmountPaid:     0,
			CreatedAt:      now.Add(-2 * day),
		},
		{
			ID:             "seed-4",
			CheckoutCode:   "ALB-T5Y8U2",
			PackageID:      "1",
			PackageName:    "Umroh Reguler Syawal",
			FullName:       "Rina Kartika",
			WhatsappNumber: "08111222333",
			NumberOfPax:    3,
			HasPassport:    models.PassportYes,
			IsFirstTime:    false,
			RoomPreference: models.RoomTriple,
			Status:         models.LeadCompleted,
			PaymentStatus:  models.PaymentPaid,
			AmountPaid:     85500000,
			AdminNotes:     "Sudah berangkat tanggal 10 Syawal",
			CreatedAt:      now.Add(-3 * day),
		},
		{
			ID:             "seed-5",
			CheckoutCode:   "ALB-F4H7J1",
			PackageID:      "2",
			PackageName:    "Umroh Plus Turki",
			FullName:       "Dr. Rahman Hakim",
			WhatsappNumber: "08122334455",
			NumberOfPax:    2,
			HasPassport:    models.PassportExpired,
			IsFirstTime:    true,
			RoomPreference: models.RoomDouble,
			HealthNotes:    "Alergi makanan laut",
			Status:         models.LeadFollowedUp,
			PaymentStatus:  models.PaymentPartial,
			AmountPaid:     72000000,
			AdminNotes:     "Perlu perpanjangan passport",
			CreatedAt:      now.Add(-4 * day),
		},
	}
}
