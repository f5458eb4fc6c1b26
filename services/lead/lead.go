package lead

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
)

// DefaultService implements Service over a LeadRepository.
type DefaultService struct {
	Repo     leadRepo.LeadRepository
	Notifier SummaryNotifier // optional
	Logger   *zap.Logger
}

// GetStatusByCode looks a lead up by booking code and returns its public
// projection. Lookup misses surface as leadRepo.ErrNotFound, not an error
// condition of their own.
func (s *DefaultService) GetStatusByCode(code string) (*models.LeadStatusView, error) {
	found, err := s.Repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	view := found.StatusView()
	return &view, nil
}

// List returns leads whose full name or booking code contains the query,
// case-insensitively. An empty query returns the full collection.
func (s *DefaultService) List(query string) ([]models.Lead, error) {
	leads, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return leads, nil
	}

	filtered := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.FullName), query) ||
			strings.Contains(strings.ToLower(l.CheckoutCode), query) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Get returns one lead by id.
func (s *DefaultService) Get(id string) (*models.Lead, error) {
	return s.Repo.GetByID(id)
}

// Update applies an admin edit to the addressed lead. Identity fields (id,
// booking code, creation time) are never editable; everything else is
// replaced from the input after validation.
func (s *DefaultService) Update(id string, input models.Lead) (*models.Lead, error) {
	if err := validateEdit(input); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated := input
	updated.ID = existing.ID
	updated.CheckoutCode = existing.CheckoutCode
	updated.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(&updated); err != nil {
		return nil, err
	}
	s.notify()
	return &updated, nil
}

// Delete removes exactly the addressed lead. Hard delete.
func (s *DefaultService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *DefaultService) notify() {
	if s.Notifier != nil {
		s.Notifier.LeadsChanged()
	}
}

func validateEdit(input models.Lead) error {
	if strings.TrimSpace(input.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidLead)
	}
	if strings.TrimSpace(input.WhatsappNumber) == "" {
		return fmt.Errorf("%w: whatsappNumber is required", ErrInvalidLead)
	}
	if input.NumberOfPax < 1 {
		return fmt.Errorf("%w: numberOfPax must be at least 1", ErrInvalidLead)
	}
	if input.AmountPaid < 0 {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidLead)
	}
	switch input.Status {
	case models.LeadPending, models.LeadFollowedUp, models.LeadCompleted, models.LeadCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidLead, input.Status)
	}
	switch input.PaymentStatus {
	case models.PaymentUnpaid, models.PaymentPartial, models.PaymentPaid:
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidLead, input.PaymentStatus)
	}
	switch input.HasPassport {
	case models.PassportYes, models.PassportNo, models.PassportExpired:
	default:
		return fmt.Errorf("%w: unknown passport status %q", ErrInvalidLead, input.HasPassport)
	}
	switch input.RoomPreference {
	case models.RoomQuad, models.RoomTriple, models.RoomDouble:
	default:
		return fmt.Errorf("%w: unknown room preference %q", ErrInvalidLead, input.RoomPreference)
	}
	return nil
}
