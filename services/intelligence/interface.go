// File: services/intelligence/interface.go
package ai

import (
	"context"

	"albarkah/models"
)

// Generator is the minimal surface of the LLM collaborator: send text,
// receive text, or fail.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service is the Mutawwif assistant plus the dashboard's lead-summary and
// marketing-copy helpers. Every operation fails open: collaborator failures
// degrade to fallback text, never to an error the caller must handle.
type Service interface {
	// Chat answers one Mutawwif conversation turn for a client.
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	// ResetChat forgets a client's conversation history.
	ResetChat(ctx context.Context, clientID string) error
	// Summary returns the currently cached lead summary.
	Summary(ctx context.Context) string
	// RefreshSummary regenerates the lead summary for the given sequence
	// number; results that are no longer the newest request are discarded.
	RefreshSummary(ctx context.Context, seq int64) error
	// MarketingCopy produces two persuasive sentences for a package.
	MarketingCopy(ctx context.Context, packageID string) string
}
