package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const ingestLockKey = "lock:news_ingestion"

// releaseScript снимает блокировку, только если она все еще наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// IngestLock - распределенная блокировка загрузки новостей на Redis (SET NX с TTL)
type IngestLock struct {
	redisClient *redis.Client
	ttl         time.Duration
	token       string
}

func NewIngestLock(redisClient *redis.Client, ttl time.Duration) *IngestLock {
	return &IngestLock{
		redisClient: redisClient,
		ttl:         ttl,
		token:       uuid.NewString(),
	}
}

func (l *IngestLock) TryLock(ctx context.Context) (bool, error) {
	ok, err := l.redisClient.SetNX(ctx, ingestLockKey, l.token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire ingestion lock: %w", err)
	}
	return ok, nil
}

func (l *IngestLock) Unlock(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.redisClient, []string{ingestLockKey}, l.token).Err(); err != nil {
		return fmt.Errorf("failed to release ingestion lock: %w", err)
	}
	return nil
}
