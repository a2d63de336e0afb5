package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyGuard remembers submitted Idempotency-Key values.
type IdempotencyGuard interface {
	// Claim returns false when key was already claimed within the TTL.
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type redisGuard struct {
	rdb *redis.Client
}

func NewRedisIdempotencyGuard(rdb *redis.Client) IdempotencyGuard {
	return &redisGuard{rdb: rdb}
}

func idempotencyRedisKey(key string) string {
	return fmt.Sprintf("idempotent-key:%s", key)
}

func (g *redisGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, idempotencyRedisKey(key), "exists", idempotencyTTL).Result()
}

func (g *redisGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, idempotencyRedisKey(key)).Err()
}

type noopGuard struct{}

// NewNoopIdempotencyGuard accepts every key. Used when Redis is not configured.
func NewNoopIdempotencyGuard() IdempotencyGuard {
	return noopGuard{}
}

func (noopGuard) Claim(context.Context, string) (bool, error) { return true, nil }

func (noopGuard) Release(context.Context, string) error { return nil }
