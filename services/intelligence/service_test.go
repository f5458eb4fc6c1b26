package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
	ai "albarkah/services/intelligence"
)

// scriptedGenerator returns canned replies, recording the prompts it saw.
type scriptedGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func newChatService(gen ai.Generator) *ai.DefaultService {
	return ai.NewDefaultService(gen, ai.NewMemoryContextStore(), nil, nil, zap.NewNop())
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("replies and keeps the transcript", func(t *testing.T) {
		gen := &scriptedGenerator{reply: "Wa'alaikumsalam, tentu saya bantu."}
		svc := newChatService(gen)

		resp, err := svc.Chat(ctx, models.ChatRequest{ClientID: "c1", Text: "Assalamu'alaikum"})
		require.NoError(t, err)
		assert.Equal(t, "Wa'alaikumsalam, tentu saya bantu.", resp.Reply)

		// The second turn's prompt carries the first exchange.
		_, err = svc.Chat(ctx, models.ChatRequest{ClientID: "c1", Text: "Paket apa yang tersedia?"})
		require.NoError(t, err)
		require.Len(t, gen.prompts, 2)
		assert.Contains(t, gen.prompts[1], "Jamaah: Assalamu'alaikum")
		assert.Contains(t, gen.prompts[1], "Mutawwif: Wa'alaikumsalam, tentu saya bantu.")
	})

	t.Run("prompt includes the catalog", func(t *testing.T) {
		gen := &scriptedGenerator{reply: "Baik."}
		svc := newChatService(gen)

		_, err := svc.Chat(ctx, models.ChatRequest{ClientID: "c2", Text: "Berapa harga Umroh?"})
		require.NoError(t, err)
		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "Umroh Reguler Syawal")
		assert.Contains(t, gen.prompts[0], "Rp 28.500.000")
	})

	t.Run("falls back on generator failure", func(t *testing.T) {
		gen := &scriptedGenerator{err: errors.New("quota exceeded")}
		svc := newChatService(gen)

		resp, err := svc.Chat(ctx, models.ChatRequest{ClientID: "c3", Text: "Halo"})
		require.NoError(t, err)
		assert.Equal(t, "Maaf, saya sedang mengalami kendala teknis.", resp.Reply)
	})

	t.Run("rejects empty messages", func(t *testing.T) {
		svc := newChatService(&scriptedGenerator{})
		_, err := svc.Chat(ctx, models.ChatRequest{ClientID: "c4", Text: "   "})
		assert.Error(t, err)
	})

	t.Run("separate clients do not share context", func(t *testing.T) {
		gen := &scriptedGenerator{reply: "Baik."}
		svc := newChatService(gen)

		_, err := svc.Chat(ctx, models.ChatRequest{ClientID: "a", Text: "Pesan dari A"})
		require.NoError(t, err)
		_, err = svc.Chat(ctx, models.ChatRequest{ClientID: "b", Text: "Pesan dari B"})
		require.NoError(t, err)

		assert.NotContains(t, gen.prompts[1], "Pesan dari A")
	})
}

func TestMarketingCopy(t *testing.T) {
	ctx := context.Background()

	t.Run("prompts with the package title", func(t *testing.T) {
		gen := &scriptedGenerator{reply: "Daftar sekarang!"}
		svc := newChatService(gen)

		copyText := svc.MarketingCopy(ctx, "2")
		assert.Equal(t, "Daftar sekarang!", copyText)
		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "Umroh Plus Turki")
		assert.True(t, strings.HasPrefix(gen.prompts[0], "Buat 2 kalimat persuasif"))
	})

	t.Run("unknown package yields empty copy", func(t *testing.T) {
		gen := &scriptedGenerator{reply: "should not be called"}
		svc := newChatService(gen)

		assert.Empty(t, svc.MarketingCopy(ctx, "999"))
		assert.Empty(t, gen.prompts)
	})

	t.Run("generator failure yields empty copy", func(t *testing.T) {
		svc := newChatService(&scriptedGenerator{err: errors.New("down")})
		assert.Empty(t, svc.MarketingCopy(ctx, "1"))
	})
}

func TestResetChat(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{reply: "Baik."}
	svc := newChatService(gen)

	_, err := svc.Chat(ctx, models.ChatRequest{ClientID: "c1", Text: "Pesan pertama"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetChat(ctx, "c1"))

	// After a reset the next turn starts from a blank transcript.
	_, err = svc.Chat(ctx, models.ChatRequest{ClientID: "c1", Text: "Pesan kedua"})
	require.NoError(t, err)
	require.Len(t, gen.prompts, 2)
	assert.NotContains(t, gen.prompts[1], "Pesan pertama")
	assert.NotContains(t, gen.prompts[1], "Percakapan sejauh ini")
}

func newSummaryService(gen ai.Generator, cache ai.SummaryCache) *ai.DefaultService {
	repo := leadRepo.NewMemoryLeadRepo()
	if err := repo.LoadOrSeed(); err != nil {
		panic(err)
	}
	return ai.NewDefaultService(gen, ai.NewMemoryContextStore(), repo, cache, zap.NewNop())
}

func TestRefreshSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("latest refresh lands", func(t *testing.T) {
		cache := ai.NewMemorySummaryCache()
		gen := &scriptedGenerator{reply: "Minat jamaah meningkat."}
		svc := newSummaryService(gen, cache)

		seq, err := cache.NextSeq(ctx)
		require.NoError(t, err)
		require.NoError(t, svc.RefreshSummary(ctx, seq))

		assert.Equal(t, "Minat jamaah meningkat.", svc.Summary(ctx))
		require.Len(t, gen.prompts, 1)
		// The prompt carries the actual lead data.
		assert.Contains(t, gen.prompts[0], "ALB-K9X2P1")
	})

	t.Run("stale refresh is discarded", func(t *testing.T) {
		cache := ai.NewMemorySummaryCache()
		gen := &scriptedGenerator{reply: "Ringkasan lama."}
		svc := newSummaryService(gen, cache)

		// Two refreshes are requested before either runs.
		first, err := cache.NextSeq(ctx)
		require.NoError(t, err)
		second, err := cache.NextSeq(ctx)
		require.NoError(t, err)

		// The older request finishes first but must not be stored.
		require.NoError(t, svc.RefreshSummary(ctx, first))
		assert.Equal(t, "Belum ada ringkasan AI.", svc.Summary(ctx))

		gen.reply = "Ringkasan terbaru."
		require.NoError(t, svc.RefreshSummary(ctx, second))
		assert.Equal(t, "Ringkasan terbaru.", svc.Summary(ctx))
	})

	t.Run("out of order completion keeps the newer result", func(t *testing.T) {
		cache := ai.NewMemorySummaryCache()
		gen := &scriptedGenerator{reply: "Ringkasan terbaru."}
		svc := newSummaryService(gen, cache)

		first, err := cache.NextSeq(ctx)
		require.NoError(t, err)
		second, err := cache.NextSeq(ctx)
		require.NoError(t, err)

		// The newer request lands first, then the older one arrives late.
		require.NoError(t, svc.RefreshSummary(ctx, second))
		gen.reply = "Ringkasan lama."
		require.NoError(t, svc.RefreshSummary(ctx, first))

		assert.Equal(t, "Ringkasan terbaru.", svc.Summary(ctx))
	})

	t.Run("generator failure stores the fallback", func(t *testing.T) {
		cache := ai.NewMemorySummaryCache()
		svc := newSummaryService(&scriptedGenerator{err: errors.New("quota exceeded")}, cache)

		seq, err := cache.NextSeq(ctx)
		require.NoError(t, err)
		require.NoError(t, svc.RefreshSummary(ctx, seq))

		assert.Equal(t, "Gagal mendapatkan ringkasan AI.", svc.Summary(ctx))
	})
}

func TestSummaryBeforeFirstRefresh(t *testing.T) {
	svc := newSummaryService(&scriptedGenerator{}, ai.NewMemorySummaryCache())
	assert.Equal(t, "Belum ada ringkasan AI.", svc.Summary(context.Background()))
}

func TestContextTrim(t *testing.T) {
	c := &models.ChatContext{}
	for i := 0; i < 20; i++ {
		c.Messages = append(c.Messages, models.ChatMessage{Role: "user", Text: "x"})
	}
	c.Trim(12)
	assert.Len(t, c.Messages, 12)
}
