package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient builds the shared client for sessions, rate limiting
// and the feed page cache.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
