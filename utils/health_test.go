package utils_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"albarkah/utils"
)

func TestHealthMonitorChecksImmediately(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Nothing listens on these ports, so the pings fail fast.
	redisClients := map[string]*redis.Client{
		"cache": redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
		}),
	}
	mongoClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(100*time.Millisecond))
	require.NoError(t, err)
	defer mongoClient.Disconnect(context.Background())

	utils.StartHealthMonitor(redisClients, mongoClient)

	// The first snapshot must land right after start, not after the
	// first 60s tick.
	require.Eventually(t, func() bool {
		return !utils.GetHealthStatus().CheckedAt.IsZero()
	}, 2*time.Second, 20*time.Millisecond)

	status := utils.GetHealthStatus()
	assert.False(t, status.Mongo)
	assert.False(t, status.Redis["cache"])
}
