package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache key prefixes and TTLs.
const (
	// AvailabilityCachePrefix keys resolver output by date.
	AvailabilityCachePrefix = "avail:"
	// AvailabilityCacheTTL bounds staleness of cached availability.
	AvailabilityCacheTTL = 30 * time.Second

	// RoleCachePrefix keys the resolved capability set by account email.
	RoleCachePrefix = "roles:"
	// RoleCacheTTL is the time-to-live for cached role sets.
	RoleCacheTTL = 10 * time.Minute

	// AuthCachePrefix keys verified-token entries by token hash.
	AuthCachePrefix = "auth:"
)

// NewRedisClient connects a Redis client and verifies it with a ping.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

// AvailabilityCacheKey builds the cache key for one date's availability.
func AvailabilityCacheKey(date string) string {
	return AvailabilityCachePrefix + date
}

// RoleCacheKey builds the cache key for one account's role set.
func RoleCacheKey(email string) string {
	return RoleCachePrefix + email
}

// AuthCacheKey builds the cache key for one verified token hash.
func AuthCacheKey(tokenHash string) string {
	return AuthCachePrefix + tokenHash
}
