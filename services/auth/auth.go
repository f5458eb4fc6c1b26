// File: services/auth/auth.go
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"albarkah/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenPrefix = "authToken:"
	// tokenTTL is how long an admin session stays valid.
	tokenTTL = 12 * time.Hour
)

// DefaultAuthService authenticates the single admin account configured at
// startup. Issued tokens are tracked by hash in redis so sign-out revokes
// them before expiry.
type DefaultAuthService struct {
	Username     string // expected admin username
	PasswordHash string // bcrypt hash of the admin password
	Cache        *redis.Client
	Logger       *zap.Logger
}

func NewDefaultAuthService(username, passwordHash string, cache *redis.Client, logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{
		Username:     username,
		PasswordHash: passwordHash,
		Cache:        cache,
		Logger:       logger,
	}
}

func (s *DefaultAuthService) SignIn(ctx context.Context, username, password string) (*AuthResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Username)) == 1
	// Always run the bcrypt comparison so both failure paths take the same time.
	passErr := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password))
	if !usernameOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(username, "admin", tokenTTL)
	if err != nil {
		s.Logger.Error("failed to generate admin token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	key := tokenPrefix + utils.HashToken(token)
	if err := s.Cache.Set(ctx, key, username, tokenTTL).Err(); err != nil {
		s.Logger.Error("failed to register admin token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		Token:     token,
		ExpiresIn: int64(tokenTTL.Seconds()),
	}, nil
}

func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	if err := s.Cache.Del(ctx, tokenPrefix+utils.HashToken(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *DefaultAuthService) IsTokenActive(ctx context.Context, token string) (bool, error) {
	n, err := s.Cache.Exists(ctx, tokenPrefix+utils.HashToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
