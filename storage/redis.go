package storage

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

func InitializeRedis() {
	// Get Redis URL from environment, fallback to localhost for development
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "", // No password for now
		DB:       0,
	})

	log.Println("🔧 Redis initialized with address:", redisURL)
}

// CacheGet returns the cached payload for key, or "" on miss or when Redis
// is unavailable. Callers treat a miss and an outage identically.
func CacheGet(ctx context.Context, key string) string {
	if Redis == nil {
		return ""
	}
	val, err := Redis.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheSet stores payload under key with a TTL. Failures are ignored; the
// cache is an optimization, never the source of truth.
func CacheSet(ctx context.Context, key, payload string, ttl time.Duration) {
	if Redis == nil {
		return
	}
	Redis.Set(ctx, key, payload, ttl)
}

// CacheInvalidate drops a cached key after the underlying entity mutates.
func CacheInvalidate(ctx context.Context, key string) {
	if Redis == nil {
		return
	}
	Redis.Del(ctx, key)
}
