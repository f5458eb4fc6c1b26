// Package catalog holds the static travel package reference data. Packages
// are defined at build time and never mutated.
package catalog

import "albarkah/models"

var packages = []models.TravelPackage{
	{
		ID:          "1",
		Title:       "Umroh Reguler Syawal",
		Category:    models.CategoryUmroh,
		Price:       28500000,
		Duration:    "9 Days",
		HotelStar:   4,
		Description: "Perjalanan ibadah Umroh nyaman dengan hotel bintang 4 di Mekkah dan Madinah.",
		Image:       "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa?q=80&w=800&auto=format&fit=crop",
		IsPopular:   true,
	},
	{
		ID:          "2",
		Title:       "Umroh Plus Turki",
		Category:    models.CategoryUmroh,
		Price:       36000000,
		Duration:    "12 Days",
		HotelStar:   5,
		Description: "Nikmati ibadah Umroh sekaligus tadabbur alam di keindahan sejarah Turki.",
		Image:       "https://images.unsplash.com/photo-1541432901042-2d8bd64b4a9b?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "3",
		Title:       "Haji Furoda 2024",
		Category:    models.CategoryHaji,
		Price:       250000000,
		Duration:    "25 Days",
		HotelStar:   5,
		Description: "Ibadah Haji tanpa antre dengan visa resmi Furoda dari Pemerintah Saudi.",
		Image:       "https://images.unsplash.com/photo-1564767609342-620cb19b2357?q=80&w=800&auto=format&fit=crop",
		IsPopular:   true,
	},
}

// All returns every offered package.
func All() []models.TravelPackage {
	out := make([]models.TravelPackage, len(packages))
	copy(out, packages)
	return out
}

// ByID returns the package with the given id, or false when it does not exist.
func ByID(id string) (models.TravelPackage, bool) {
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return models.TravelPackage{}, false
}
