package checkout

import (
	"crypto/rand"
	"fmt"

	leadRepo "albarkah/database/repository/lead"
)

// codeAlphabet excludes visually confusable characters (0/O, 1/I).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// codePrefix is the fixed booking-code prefix.
const codePrefix = "ALB-"

const codeLength = 6

// maxCodeAttempts bounds regeneration when a generated code collides with an
// existing lead.
const maxCodeAttempts = 5

// generateCode produces one random booking code of the form ALB-XXXXXX.
func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	code := make([]byte, codeLength)
	// len(codeAlphabet) is 32, which divides 256 evenly, so the modulo
	// introduces no bias.
	for i, b := range buf {
		code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return codePrefix + string(code), nil
}

// uniqueCode generates a booking code that does not exist in the store,
// regenerating on collision up to maxCodeAttempts times.
func uniqueCode(repo leadRepo.LeadRepository) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return "", err
		}
		_, err = repo.GetByCode(code)
		if err == leadRepo.ErrNotFound {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking code uniqueness: %w", err)
		}
	}
	return "", ErrCodeGeneration
}
