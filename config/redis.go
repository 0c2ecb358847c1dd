package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials the Redis instance backing rate-limit windows, pending
// OTP codes, and recent-search lists.
func ConnectRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
		log.Println("⚠️ REDIS_URL not set, falling back to", url)
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("❌ Invalid REDIS_URL: %v", err)
	}
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 5 * time.Minute

	RedisClient = redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(Ctx, 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}

	log.Println("✅ Redis connected")
}
