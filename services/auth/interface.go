// File: services/auth/interface.go
package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for any username/password mismatch. The
// message is deliberately generic so callers cannot tell which field failed.
var ErrInvalidCredentials = errors.New("Username atau password salah.")

// AuthResponse carries the bearer token handed to the admin frontend.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// Service authenticates the single admin operator and manages token
// revocation.
type Service interface {
	SignIn(ctx context.Context, username, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, token string) error
	// IsTokenActive reports whether a token has been issued and not revoked.
	IsTokenActive(ctx context.Context, token string) (bool, error)
}
