package leadRepo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
)

func TestCreateRejectsDuplicateCode(t *testing.T) {
	repo := leadRepo.NewMemoryLeadRepo()

	require.NoError(t, repo.Create(&models.Lead{ID: "a", CheckoutCode: "ALB-AAA111"}))
	// Codes are normalized, so a lowercase duplicate still collides.
	err := repo.Create(&models.Lead{ID: "b", CheckoutCode: "alb-aaa111"})
	assert.ErrorIs(t, err, leadRepo.ErrDuplicateCode)
}

func TestGetByCodeNormalizes(t *testing.T) {
	repo := leadRepo.NewMemoryLeadRepo()
	require.NoError(t, repo.Create(&models.Lead{ID: "a", CheckoutCode: "ALB-AAA111"}))

	found, err := repo.GetByCode(" alb-aaa111 ")
	require.NoError(t, err)
	assert.Equal(t, "a", found.ID)
}

func TestGetAllNewestFirst(t *testing.T) {
	repo := leadRepo.NewMemoryLeadRepo()
	require.NoError(t, repo.Create(&models.Lead{ID: "old", CheckoutCode: "ALB-AAA111"}))
	require.NoError(t, repo.Create(&models.Lead{ID: "new", CheckoutCode: "ALB-BBB222"}))

	leads, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "new", leads[0].ID)
}

func TestLoadOrSeed(t *testing.T) {
	repo := leadRepo.NewMemoryLeadRepo()

	require.NoError(t, repo.LoadOrSeed())
	leads, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, leads, 5)

	// Seeding is idempotent and never clobbers existing data.
	require.NoError(t, repo.Delete("seed-1"))
	require.NoError(t, repo.LoadOrSeed())
	leads, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, leads, 4)
}

func TestSeedLeadsMatchExpectedCodes(t *testing.T) {
	var codes []string
	for _, l := range leadRepo.SeedLeads() {
		codes = append(codes, l.CheckoutCode)
	}
	assert.Equal(t, []string{
		"ALB-K9X2P1", "ALB-M7Z8L3", "ALB-R2W9Q4", "ALB-T5Y8U2", "ALB-F4H7J1",
	}, codes)
}
