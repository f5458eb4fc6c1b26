package models

// PackageCategory distinguishes Umroh and Haji packages.
type PackageCategory string

const (
	CategoryUmroh PackageCategory = "Umroh"
	CategoryHaji  PackageCategory = "Haji"
)

// TravelPackage is immutable reference data for one offered trip. Prices are
// in the smallest currency unit (IDR).
type TravelPackage struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    PackageCategory `json:"category"`
	Price       int64           `json:"price"`
	Duration    string          `json:"duration"`
	HotelStar   int             `json:"hotelStar"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	IsPopular   bool            `json:"isPopular,omitempty"`
}
