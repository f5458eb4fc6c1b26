package checkout

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
)

var codePattern = regexp.MustCompile(`^ALB-[A-HJ-NP-Z2-9]{6}$`)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		assert.NotContains(t, code[4:], "0")
		assert.NotContains(t, code[4:], "O")
		assert.NotContains(t, code[4:], "1")
		assert.NotContains(t, code[4:], "I")
		seen[code] = true
	}
	// 200 draws from a 32^6 space colliding would point at broken randomness.
	assert.Greater(t, len(seen), 190)
}

// collidingRepo reports every code as taken for the first n lookups.
type collidingRepo struct {
	leadRepo.LeadRepository
	collisions int
	calls      int
}

func (r *collidingRepo) GetByCode(code string) (*models.Lead, error) {
	r.calls++
	if r.calls <= r.collisions {
		return &models.Lead{CheckoutCode: code}, nil
	}
	return nil, leadRepo.ErrNotFound
}

func TestUniqueCode(t *testing.T) {
	t.Run("regenerates on collision", func(t *testing.T) {
		repo := &collidingRepo{collisions: 2}
		code, err := uniqueCode(repo)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "ALB-"))
		assert.Equal(t, 3, repo.calls)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		repo := &collidingRepo{collisions: maxCodeAttempts}
		_, err := uniqueCode(repo)
		assert.ErrorIs(t, err, ErrCodeGeneration)
	})
}
