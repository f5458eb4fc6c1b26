// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"albarkah/models"

	"github.com/go-redis/redis/v8"
)

const (
	aiContextPrefix = "ai:ctx:"
	// maxTranscript bounds how much conversation history rides along with
	// each prompt.
	maxTranscript = 12
)

// ContextStore persists per-client conversation history between turns.
type ContextStore interface {
	Get(ctx context.Context, clientID string) (*models.ChatContext, error)
	Set(ctx context.Context, clientID string, chatCtx *models.ChatContext) error
	Clear(ctx context.Context, clientID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, clientID string) (*models.ChatContext, error) {
	key := aiContextPrefix + clientID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, clientID string, chatCtx *models.ChatContext) error {
	chatCtx.Trim(maxTranscript)
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, aiContextPrefix+clientID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, clientID string) error {
	return s.client.Del(ctx, aiContextPrefix+clientID).Err()
}

// MemoryContextStore keeps conversations in-process. Used in tests and when
// running without redis.
type MemoryContextStore struct {
	mu       sync.RWMutex
	contexts map[string]models.ChatContext
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{contexts: make(map[string]models.ChatContext)}
}

func (s *MemoryContextStore) Get(ctx context.Context, clientID string) (*models.ChatContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chatCtx, ok := s.contexts[clientID]
	if !ok {
		return &models.ChatContext{}, nil
	}
	cp := chatCtx
	cp.Messages = append([]models.ChatMessage(nil), chatCtx.Messages...)
	return &cp, nil
}

func (s *MemoryContextStore) Set(ctx context.Context, clientID string, chatCtx *models.ChatContext) error {
	chatCtx.Trim(maxTranscript)
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *chatCtx
	cp.Messages = append([]models.ChatMessage(nil), chatCtx.Messages...)
	s.contexts[clientID] = cp
	return nil
}

func (s *MemoryContextStore) Clear(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, clientID)
	return nil
}
