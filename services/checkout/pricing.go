package checkout

import (
	"albarkah/catalog"
	"albarkah/models"
)

// roomSurcharges are per-pilgrim price additions in the smallest currency
// unit, keyed by room occupancy preference.
var roomSurcharges = map[models.RoomPreference]int64{
	models.RoomQuad:   0,
	models.RoomTriple: 2500000,
	models.RoomDouble: 5000000,
}

// RoomSurcharge returns the per-pilgrim surcharge for a room preference.
// Unknown preferences carry no surcharge.
func RoomSurcharge(room models.RoomPreference) int64 {
	return roomSurcharges[room]
}

// Quote computes the estimated total for a booking:
// (packagePrice + roomSurcharge) * numberOfPax.
// This is the single pricing function shared by the checkout flow and the
// admin dashboard's outstanding-balance calculation.
func Quote(packagePrice int64, room models.RoomPreference, pax int) int64 {
	if pax < 1 {
		pax = 1
	}
	return (packagePrice + RoomSurcharge(room)) * int64(pax)
}

// QuoteLead computes the total for an existing lead by resolving its package
// in the catalog. The second return is false when the package no longer
// exists.
func QuoteLead(lead models.Lead) (int64, bool) {
	pkg, ok := catalog.ByID(lead.PackageID)
	if !ok {
		return 0, false
	}
	return Quote(pkg.Price, lead.RoomPreference, lead.NumberOfPax), true
}
