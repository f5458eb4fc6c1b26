package leadRepo

import (
	"errors"
	"strings"

	"albarkah/models"
)

var (
	// ErrNotFound is returned when no lead matches the query.
	ErrNotFound = errors.New("lead not found")
	// ErrDuplicateCode is returned when a checkout code collides with an
	// existing lead. The generator should prevent this; the store defends
	// the invariant anyway.
	ErrDuplicateCode = errors.New("checkout code already exists")
)

// NormalizeCode canonicalizes a booking code for storage and lookup so that
// code matching is case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LeadRepository defines methods for lead data access.
type LeadRepository interface {
	// Create inserts a new lead record.
	Create(lead *models.Lead) error
	// GetByID retrieves a lead by its unique ID.
	GetByID(id string) (*models.Lead, error)
	// GetByCode retrieves a lead by checkout code, case-insensitively.
	GetByCode(code string) (*models.Lead, error)
	// GetAll retrieves all leads, newest first.
	GetAll() ([]models.Lead, error)
	// Update replaces an existing lead record by its ID.
	Update(lead *models.Lead) error
	// Delete removes a lead record by its ID.
	Delete(id string) error
	// ReplaceAll swaps the whole collection for the given leads.
	ReplaceAll(leads []models.Lead) error
	// LoadOrSeed installs the seed dataset when the store is empty or its
	// schema version does not match the current one.
	LoadOrSeed() error
}
