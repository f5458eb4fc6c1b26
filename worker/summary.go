// File: worker/summary.go
package worker

import (
	"context"
	"encoding/json"
	"time"

	"albarkah/config"
	ai "albarkah/services/intelligence"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSummaryRefresh = "summary:refresh"

// SummaryRefreshPayload carries the sequence number of the change that
// triggered the refresh.
type SummaryRefreshPayload struct {
	Seq int64 `json:"seq"`
}

// Enqueuer requests a summary refresh whenever the lead set changes. Each
// request claims the next sequence number; the handler discards results that
// lost the race to a newer request.
type Enqueuer struct {
	client *asynq.Client
	cache  ai.SummaryCache
	logger *zap.Logger
}

func NewEnqueuer(cache ai.SummaryCache, logger *zap.Logger) *Enqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &Enqueuer{client: client, cache: cache, logger: logger}
}

// LeadsChanged schedules a background summary refresh. Failures are logged
// and swallowed so lead writes never fail because of the queue.
func (e *Enqueuer) LeadsChanged() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seq, err := e.cache.NextSeq(ctx)
	if err != nil {
		e.logger.Error("failed to bump summary sequence", zap.Error(err))
		return
	}

	b, err := json.Marshal(SummaryRefreshPayload{Seq: seq})
	if err != nil {
		e.logger.Error("failed to marshal summary payload", zap.Error(err))
		return
	}

	task := asynq.NewTask(TypeSummaryRefresh, b)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		e.logger.Error("failed to enqueue summary refresh", zap.Int64("seq", seq), zap.Error(err))
		return
	}
	e.logger.Debug("enqueued summary refresh", zap.Int64("seq", seq))
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}

// InitSummaryWorker runs the async worker in background.
func InitSummaryWorker(aiSvc ai.Service, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSummaryRefresh, handleSummaryTask(aiSvc, logger))

	go func() {
		logger.Info("starting summary worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("summary worker failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("summary worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleSummaryTask(aiSvc ai.Service, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p SummaryRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid summary payload", zap.Error(err))
			return err
		}
		if err := aiSvc.RefreshSummary(ctx, p.Seq); err != nil {
			logger.Error("summary refresh failed", zap.Int64("seq", p.Seq), zap.Error(err))
			return err
		}
		return nil
	}
}
