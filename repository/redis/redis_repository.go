package redis

import (
	"context"
	"strconv"
	"time"

	redisclient "github.com/decomizer/storefront/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// RedisRepository holds session and visit counter keys.
type RedisRepository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	IncrVisits(ctx context.Context, day string, ttl time.Duration) (int64, error)
	// GetVisits returns one counter per day in the order given, missing days count zero.
	GetVisits(ctx context.Context, days []string) ([]int64, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() RedisRepository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func visitKey(day string) string {
	return "visits:" + day
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

// IncrVisits bumps the counter of day and refreshes its expiry.
func (r *redis) IncrVisits(ctx context.Context, day string, ttl time.Duration) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, visitKey(day))
	pipe.Expire(ctx, visitKey(day), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (r *redis) GetVisits(ctx context.Context, days []string) ([]int64, error) {
	res := make([]int64, len(days))
	client := redisclient.Get()
	if client == nil || len(days) == 0 {
		return res, nil
	}
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = visitKey(d)
	}
	vals, err := client.MGet(ctx, keys...).Result()
	if err != nil && err != goredis.Nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
