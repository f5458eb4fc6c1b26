package checkout

import (
	"errors"

	"albarkah/models"
)

var (
	// ErrSessionNotFound is returned when a session does not exist or expired.
	ErrSessionNotFound = errors.New("checkout session not found or expired")
	// ErrWrongStep is returned when a step submission does not match the
	// session's current step. Steps are strictly linear.
	ErrWrongStep = errors.New("submitted step does not match the current step")
	// ErrValidation is returned when a step's required fields are missing or
	// malformed.
	ErrValidation = errors.New("invalid checkout input")
	// ErrCodeGeneration is returned when no unique booking code could be
	// produced within the retry budget.
	ErrCodeGeneration = errors.New("failed to generate a unique booking code")
	// ErrUnknownPackage is returned when the referenced package does not exist.
	ErrUnknownPackage = errors.New("unknown travel package")
)

// StepInput carries the fields a single checkout step may set. Fields not
// belonging to the submitted step are ignored.
type StepInput struct {
	// Step 1 — identity.
	FullName       string `json:"fullName,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`

	// Step 2 — documents.
	HasPassport models.PassportStatus `json:"hasPassport,omitempty"`
	IsFirstTime *bool                 `json:"isFirstTime,omitempty"`

	// Step 3 — preferences / review.
	RoomPreference models.RoomPreference `json:"roomPreference,omitempty"`
	NumberOfPax    int                   `json:"numberOfPax,omitempty"`
	HealthNotes    string                `json:"healthNotes,omitempty"`
}

// SessionService drives the multi-step checkout flow. Sessions move strictly
// forward and backward through steps 1-3; confirmation is terminal.
type SessionService interface {
	Initiate(packageID string) (*models.CheckoutSession, error)
	SubmitStep(sessionID string, step models.CheckoutStep, input StepInput) (*models.CheckoutSession, error)
	Back(sessionID string) (*models.CheckoutSession, error)
	Confirm(sessionID string) (*models.CheckoutConfirmation, error)
}

// SummaryNotifier is pinged after the lead collection changes so the AI
// summary can be refreshed in the background. Fire-and-forget.
type SummaryNotifier interface {
	LeadsChanged()
}
