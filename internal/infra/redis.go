package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the cache client used for dashboard aggregates and pings
// it once so a bad REDIS_URL fails at startup rather than on first read. The
// rest of the app treats a nil client as "cache disabled".
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
