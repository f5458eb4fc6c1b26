// File: services/intelligence/summaryCache.go
package ai

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/go-redis/redis/v8"
)

const (
	summaryTextKey = "ai:summary:text"
	summarySeqKey  = "ai:summary:seq"
)

// ErrNoSummary is returned when no summary has been generated yet.
var ErrNoSummary = errors.New("no summary cached yet")

// SummaryCache holds the generated lead summary and the refresh sequence
// counter. Each lead mutation takes the next sequence number; a refresh
// result may only be stored while its number is still the latest.
type SummaryCache interface {
	Summary(ctx context.Context) (string, error)
	StoreSummary(ctx context.Context, text string) error
	// NextSeq atomically claims the next refresh sequence number.
	NextSeq(ctx context.Context) (int64, error)
	// LatestSeq returns the most recently claimed sequence number, 0 when
	// none has been claimed.
	LatestSeq(ctx context.Context) (int64, error)
}

type RedisSummaryCache struct {
	client *redis.Client
}

func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Summary(ctx context.Context) (string, error) {
	text, err := c.client.Get(ctx, summaryTextKey).Result()
	if err == redis.Nil {
		return "", ErrNoSummary
	}
	return text, err
}

func (c *RedisSummaryCache) StoreSummary(ctx context.Context, text string) error {
	return c.client.Set(ctx, summaryTextKey, text, 0).Err()
}

func (c *RedisSummaryCache) NextSeq(ctx context.Context) (int64, error) {
	return c.client.Incr(ctx, summarySeqKey).Result()
}

func (c *RedisSummaryCache) LatestSeq(ctx context.Context) (int64, error) {
	val, err := c.client.Get(ctx, summarySeqKey).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// MemorySummaryCache keeps the summary in-process. Used in tests and when
// running without redis.
type MemorySummaryCache struct {
	mu      sync.Mutex
	text    string
	hasText bool
	seq     int64
}

func NewMemorySummaryCache() *MemorySummaryCache {
	return &MemorySummaryCache{}
}

func (c *MemorySummaryCache) Summary(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasText {
		return "", ErrNoSummary
	}
	return c.text, nil
}

func (c *MemorySummaryCache) StoreSummary(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.hasText = true
	return nil
}

func (c *MemorySummaryCache) NextSeq(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq, nil
}

func (c *MemorySummaryCache) LatestSeq(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq, nil
}
