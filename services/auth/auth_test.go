package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"albarkah/services/auth"
)

func adminHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc := auth.NewDefaultAuthService("admin", adminHash(t, "s3cret!PW"), nil, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "s3cret!PW"},
		{"both wrong", "root", "wrong"},
		{"empty credentials", "", ""},
		{"legacy hardcoded pair", "admin", "admin123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignIn(ctx, tt.username, tt.password)
			// Always the same generic error, never a hint at which field failed.
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestSignInRejectsEmptyHash(t *testing.T) {
	// An unset ADMIN_PASSWORD_HASH must never let anyone in.
	svc := auth.NewDefaultAuthService("admin", "", nil, zap.NewNop())

	_, err := svc.SignIn(context.Background(), "admin", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
