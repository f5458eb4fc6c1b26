package lead

import (
	"fmt"

	"albarkah/models"
	"albarkah/services/checkout"
)

// Stats recomputes the full aggregate view on every call; the collection is
// small enough that incremental caching is not worth its complexity.
func (s *DefaultService) Stats() (*models.DashboardStats, error) {
	leads, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load leads for stats: %w", err)
	}
	return ComputeStats(leads), nil
}

// ComputeStats aggregates counts, sums, conversion rate, and per-lead
// outstanding balances. The outstanding balance uses the same pricing
// function as the checkout flow, so the two cannot drift.
func ComputeStats(leads []models.Lead) *models.DashboardStats {
	stats := &models.DashboardStats{
		TotalLeads:  len(leads),
		ByStatus:    make(map[models.LeadStatus]int),
		ByPayment:   make(map[models.PaymentStatus]int),
		Outstanding: make([]models.OutstandingBalance, 0, len(leads)),
	}

	paid := 0
	for _, l := range leads {
		stats.TotalPax += l.NumberOfPax
		stats.ByStatus[l.Status]++
		stats.ByPayment[l.PaymentStatus]++
		stats.TotalRevenue += l.AmountPaid
		if l.PaymentStatus == models.PaymentPaid {
			paid++
			stats.PaidRevenue += l.AmountPaid
		}

		if total, ok := checkout.QuoteLead(l); ok {
			stats.Outstanding = append(stats.Outstanding, models.OutstandingBalance{
				LeadID:       l.ID,
				CheckoutCode: l.CheckoutCode,
				FullName:     l.FullName,
				Total:        total,
				AmountPaid:   l.AmountPaid,
				Outstanding:  total - l.AmountPaid,
			})
		}
	}

	// An empty collection has a defined conversion rate of 0, not NaN.
	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(paid) / float64(stats.TotalLeads) * 100
	}
	return stats
}
