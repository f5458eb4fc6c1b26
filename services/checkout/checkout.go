package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"albarkah/catalog"
	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
)

// DefaultSessionService implements SessionService on top of a session store
// and the lead repository.
type DefaultSessionService struct {
	Repo     leadRepo.LeadRepository
	Sessions SessionStore
	Notifier SummaryNotifier // optional
	WANumber string
	Logger   *zap.Logger
}

// Initiate creates a new checkout session for the given package, starting at
// the identity step with default preferences.
func (s *DefaultSessionService) Initiate(packageID string) (*models.CheckoutSession, error) {
	pkg, ok := catalog.ByID(packageID)
	if !ok {
		return nil, ErrUnknownPackage
	}

	session := &models.CheckoutSession{
		SessionID: uuid.New().String(),
		PackageID: pkg.ID,
		Step:      models.StepIdentity,
		Details: models.CheckoutDetails{
			NumberOfPax:    1,
			HasPassport:    models.PassportYes,
			IsFirstTime:    true,
			RoomPreference: models.RoomQuad,
		},
	}
	session.Total = Quote(pkg.Price, session.Details.RoomPreference, session.Details.NumberOfPax)

	if err := s.Sessions.Save(context.Background(), session); err != nil {
		return nil, fmt.Errorf("failed to store checkout session: %w", err)
	}
	return session, nil
}

// SubmitStep validates and applies one step's input. Submitting any step
// other than the session's current step fails; step 3 can be resubmitted to
// revise preferences before confirming.
func (s *DefaultSessionService) SubmitStep(sessionID string, step models.CheckoutStep, input StepInput) (*models.CheckoutSession, error) {
	ctx := context.Background()
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if step != session.Step {
		return nil, fmt.Errorf("%w: at step %d, got step %d", ErrWrongStep, session.Step, step)
	}

	switch step {
	case models.StepIdentity:
		fullName := strings.TrimSpace(input.FullName)
		waNumber := strings.TrimSpace(input.WhatsappNumber)
		if fullName == "" {
			return nil, fmt.Errorf("%w: fullName is required", ErrValidation)
		}
		if waNumber == "" {
			return nil, fmt.Errorf("%w: whatsappNumber is required", ErrValidation)
		}
		session.Details.FullName = fullName
		session.Details.WhatsappNumber = waNumber
		session.Step = models.StepDocuments

	case models.StepDocuments:
		if input.HasPassport != "" {
			switch input.HasPassport {
			case models.PassportYes, models.PassportNo, models.PassportExpired:
				session.Details.HasPassport = input.HasPassport
			default:
				return nil, fmt.Errorf("%w: unknown passport status %q", ErrValidation, input.HasPassport)
			}
		}
		if input.IsFirstTime != nil {
			session.Details.IsFirstTime = *input.IsFirstTime
		}
		session.Step = models.StepPreferences

	case models.StepPreferences:
		if input.RoomPreference != "" {
			switch input.RoomPreference {
			case models.RoomQuad, models.RoomTriple, models.RoomDouble:
				session.Details.RoomPreference = input.RoomPreference
			default:
				return nil, fmt.Errorf("%w: unknown room preference %q", ErrValidation, input.RoomPreference)
			}
		}
		if input.NumberOfPax != 0 {
			if input.NumberOfPax < 1 {
				return nil, fmt.Errorf("%w: numberOfPax must be at least 1", ErrValidation)
			}
			session.Details.NumberOfPax = input.NumberOfPax
		}
		session.Details.HealthNotes = strings.TrimSpace(input.HealthNotes)
		// The review step is re-enterable until confirmation.

	default:
		return nil, fmt.Errorf("%w: step %d", ErrWrongStep, step)
	}

	s.requote(session)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store checkout session: %w", err)
	}
	return session, nil
}

// Back moves the session one step backwards, keeping entered data. Step 1 is
// the floor.
func (s *DefaultSessionService) Back(sessionID string) (*models.CheckoutSession, error) {
	ctx := context.Background()
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step > models.StepIdentity {
		session.Step--
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store checkout session: %w", err)
		}
	}
	return session, nil
}

// Confirm finalizes the checkout: generates a unique booking code, persists
// the lead with default commercial fields, deletes the session, and returns
// the lead with a pre-filled WhatsApp confirmation link. The session is not
// re-enterable afterwards.
func (s *DefaultSessionService) Confirm(sessionID string) (*models.CheckoutConfirmation, error) {
	ctx := context.Background()
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPreferences {
		return nil, fmt.Errorf("%w: confirmation requires the review step", ErrWrongStep)
	}

	pkg, ok := catalog.ByID(session.PackageID)
	if !ok {
		return nil, ErrUnknownPackage
	}

	lead, err := s.createLead(session, pkg)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to delete confirmed checkout session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	if s.Notifier != nil {
		s.Notifier.LeadsChanged()
	}

	total := Quote(pkg.Price, lead.RoomPreference, lead.NumberOfPax)
	return &models.CheckoutConfirmation{
		Lead:         lead,
		WhatsAppLink: BuildWhatsAppLink(s.WANumber, lead, total),
	}, nil
}

// createLead builds and persists the lead, regenerating the booking code if
// the store reports a collision.
func (s *DefaultSessionService) createLead(session *models.CheckoutSession, pkg models.TravelPackage) (*models.Lead, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := uniqueCode(s.Repo)
		if err != nil {
			return nil, err
		}

		lead := &models.Lead{
			ID:             uuid.New().String(),
			CheckoutCode:   code,
			PackageID:      pkg.ID,
			PackageName:    pkg.Title,
			FullName:       session.Details.FullName,
			WhatsappNumber: session.Details.WhatsappNumber,
			NumberOfPax:    session.Details.NumberOfPax,
			HasPassport:    session.Details.HasPassport,
			IsFirstTime:    session.Details.IsFirstTime,
			RoomPreference: session.Details.RoomPreference,
			HealthNotes:    session.Details.HealthNotes,
			Status:         models.LeadPending,
			PaymentStatus:  models.PaymentUnpaid,
			AmountPaid:     0,
			CreatedAt:      time.Now(),
		}

		err = s.Repo.Create(lead)
		if err == nil {
			return lead, nil
		}
		// A concurrent checkout may have taken the code between the
		// uniqueness check and the insert.
		if err == leadRepo.ErrDuplicateCode {
			continue
		}
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}
	return nil, ErrCodeGeneration
}

func (s *DefaultSessionService) requote(session *models.CheckoutSession) {
	if pkg, ok := catalog.ByID(session.PackageID); ok {
		session.Total = Quote(pkg.Price, session.Details.RoomPreference, session.Details.NumberOfPax)
	}
}
