package lead

import (
	"errors"

	"albarkah/models"
)

// ErrInvalidLead is returned when an admin edit carries malformed fields.
var ErrInvalidLead = errors.New("invalid lead data")

// Service exposes the lead operations behind the public status checker and
// the admin dashboard.
type Service interface {
	// GetStatusByCode is the public status-checker lookup.
	GetStatusByCode(code string) (*models.LeadStatusView, error)
	// List returns leads matching the query (case-insensitive substring on
	// full name or booking code); an empty query returns all leads.
	List(query string) ([]models.Lead, error)
	// Get returns one lead by id.
	Get(id string) (*models.Lead, error)
	// Update replaces the editable fields of the addressed lead.
	Update(id string, input models.Lead) (*models.Lead, error)
	// Delete removes one lead by id. Irreversible.
	Delete(id string) error
	// Stats recomputes the dashboard aggregates over the full collection.
	Stats() (*models.DashboardStats, error)
	// ExportXLSX serializes the full collection into a spreadsheet.
	ExportXLSX() ([]byte, error)
}

// SummaryNotifier is pinged after a mutation so the AI summary can be
// refreshed in the background.
type SummaryNotifier interface {
	LeadsChanged()
}
