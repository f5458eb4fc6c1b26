package leadRepo

import (
	"sync"
	"time"

	"albarkah/models"
)

// MemoryLeadRepo is an in-memory LeadRepository, used by tests and local
// development without a Mongo instance.
type MemoryLeadRepo struct {
	mu    sync.RWMutex
	leads []models.Lead
}

// NewMemoryLeadRepo creates an empty in-memory lead store.
func NewMemoryLeadRepo() *MemoryLeadRepo {
	return &MemoryLeadRepo{}
}

func (r *MemoryLeadRepo) Create(lead *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead.CheckoutCode = NormalizeCode(lead.CheckoutCode)
	for _, l := range r.leads {
		if l.CheckoutCode == lead.CheckoutCode {
			return ErrDuplicateCode
		}
	}
	now := time.Now()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now

	// Newest first, matching the Mongo sort order.
	r.leads = append([]models.Lead{*lead}, r.leads...)
	return nil
}

func (r *MemoryLeadRepo) GetByID(id string) (*models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leads {
		if l.ID == id {
			out := l
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryLeadRepo) GetByCode(code string) (*models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := NormalizeCode(code)
	for _, l := range r.leads {
		if l.CheckoutCode == normalized {
			out := l
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryLeadRepo) GetAll() ([]models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

func (r *MemoryLeadRepo) Update(lead *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead.CheckoutCode = NormalizeCode(lead.CheckoutCode)
	for i, l := range r.leads {
		if l.ID == lead.ID {
			lead.UpdatedAt = time.Now()
			r.leads[i] = *lead
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryLeadRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.leads {
		if l.ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryLeadRepo) ReplaceAll(leads []models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = make([]models.Lead, len(leads))
	copy(r.leads, leads)
	for i := range r.leads {
		r.leads[i].CheckoutCode = NormalizeCode(r.leads[i].CheckoutCode)
	}
	return nil
}

func (r *MemoryLeadRepo) LoadOrSeed() error {
	r.mu.Lock()
	empty := len(r.leads) == 0
	r.mu.Unlock()

	if empty {
		return r.ReplaceAll(SeedLeads())
	}
	return nil
}
