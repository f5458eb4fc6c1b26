// File: services/intelligence/service.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"albarkah/catalog"
	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
	"albarkah/services/checkout"

	"go.uber.org/zap"
)

const (
	generateTimeout = 30 * time.Second

	// Fallback strings are surfaced to the frontend verbatim, keep them in
	// Bahasa Indonesia.
	summaryFallback = "Gagal mendapatkan ringkasan AI."
	summaryPending  = "Belum ada ringkasan AI."
	chatFallback    = "Maaf, saya sedang mengalami kendala teknis."
)

const mutawwifPersona = `Anda adalah Asisten Mutawwif Al-Barkah Travel, pemandu ibadah Umroh dan Haji yang ramah.
Jawab selalu dalam Bahasa Indonesia yang sopan dan singkat (maksimal 3 kalimat).
Bantu jamaah seputar paket perjalanan, persiapan dokumen, dan tata cara ibadah.
Jika ditanya hal di luar topik perjalanan ibadah, arahkan kembali dengan halus.`

type DefaultService struct {
	Gen      Generator
	Contexts ContextStore
	Repo     leadRepo.LeadRepository
	Cache    SummaryCache
	Logger   *zap.Logger
}

func NewDefaultService(gen Generator, contexts ContextStore, repo leadRepo.LeadRepository, cache SummaryCache, logger *zap.Logger) *DefaultService {
	return &DefaultService{Gen: gen, Contexts: contexts, Repo: repo, Cache: cache, Logger: logger}
}

// Chat runs one conversation turn. Collaborator failures degrade to a polite
// fallback reply rather than an error.
func (s *DefaultService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}

	chatCtx, err := s.Contexts.Get(ctx, req.ClientID)
	if err != nil {
		s.Logger.Warn("failed to load chat context", zap.String("clientId", req.ClientID), zap.Error(err))
		chatCtx = &models.ChatContext{}
	}

	prompt := buildChatPrompt(chatCtx, text)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	reply, err := s.Gen.GenerateContent(genCtx, prompt)
	if err != nil || reply == "" {
		s.Logger.Error("mutawwif chat generation failed", zap.Error(err))
		reply = chatFallback
	}

	chatCtx.Messages = append(chatCtx.Messages,
		models.ChatMessage{Role: "user", Text: text},
		models.ChatMessage{Role: "model", Text: reply},
	)
	if err := s.Contexts.Set(ctx, req.ClientID, chatCtx); err != nil {
		s.Logger.Warn("failed to save chat context", zap.String("clientId", req.ClientID), zap.Error(err))
	}

	return &models.ChatResponse{Reply: reply}, nil
}

func buildChatPrompt(chatCtx *models.ChatContext, userText string) string {
	var sb strings.Builder
	sb.WriteString(mutawwifPersona)
	sb.WriteString("\n\nPaket yang tersedia:\n")
	for _, pkg := range catalog.All() {
		sb.WriteString(fmt.Sprintf("- %s (%s, %s): %s\n",
			pkg.Title, pkg.Duration, checkout.FormatRupiah(pkg.Price), pkg.Description))
	}
	if len(chatCtx.Messages) > 0 {
		sb.WriteString("\nPercakapan sejauh ini:\n")
		for _, msg := range chatCtx.Messages {
			if msg.Role == "user" {
				sb.WriteString("Jamaah: ")
			} else {
				sb.WriteString("Mutawwif: ")
			}
			sb.WriteString(msg.Text)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\nJamaah: ")
	sb.WriteString(userText)
	sb.WriteString("\nMutawwif:")
	return sb.String()
}

// ResetChat forgets a client's conversation history.
func (s *DefaultService) ResetChat(ctx context.Context, clientID string) error {
	if err := s.Contexts.Clear(ctx, clientID); err != nil {
		return fmt.Errorf("clear chat context: %w", err)
	}
	return nil
}

// Summary returns the cached dashboard summary. It never blocks on the model.
func (s *DefaultService) Summary(ctx context.Context) string {
	text, err := s.Cache.Summary(ctx)
	if err == ErrNoSummary {
		return summaryPending
	}
	if err != nil {
		s.Logger.Warn("failed to read cached summary", zap.Error(err))
		return summaryFallback
	}
	return text
}

// RefreshSummary regenerates the lead summary requested at sequence seq.
// A result is discarded when a newer refresh has been requested since, so
// concurrent refreshes settle on the latest data.
func (s *DefaultService) RefreshSummary(ctx context.Context, seq int64) error {
	leads, err := s.Repo.GetAll()
	if err != nil {
		return fmt.Errorf("load leads for summary: %w", err)
	}

	payload, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("marshal leads for summary: %w", err)
	}
	prompt := fmt.Sprintf(
		"Analisa data lead Umroh berikut dan berikan ringkasan singkat dalam Bahasa Indonesia mengenai tren minat jamaah: %s",
		payload,
	)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := s.Gen.GenerateContent(genCtx, prompt)
	if err != nil || text == "" {
		s.Logger.Error("lead summary generation failed", zap.Error(err))
		text = summaryFallback
	}

	latest, err := s.Cache.LatestSeq(ctx)
	if err != nil {
		return fmt.Errorf("read summary sequence: %w", err)
	}
	if seq < latest {
		s.Logger.Debug("discarding stale summary",
			zap.Int64("seq", seq), zap.Int64("latest", latest))
		return nil
	}

	if err := s.Cache.StoreSummary(ctx, text); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	return nil
}

// MarketingCopy asks the model for two persuasive sentences about a package.
// Any failure yields an empty string.
func (s *DefaultService) MarketingCopy(ctx context.Context, packageID string) string {
	pkg, ok := catalog.ByID(packageID)
	if !ok {
		return ""
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := s.Gen.GenerateContent(genCtx, fmt.Sprintf(
		"Buat 2 kalimat persuasif untuk mengajak jamaah mendaftar paket %s sekarang juga.", pkg.Title))
	if err != nil {
		s.Logger.Error("marketing copy generation failed",
			zap.String("packageId", packageID), zap.Error(err))
		return ""
	}
	return text
}
