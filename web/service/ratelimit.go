package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hamlog/config"
	"hamlog/logger"

	"github.com/redis/go-redis/v9"
)

// RateLimitService is a fixed-window counter on redis. It is a no-op
// (everything allowed) when no redis address is configured, so a bare
// single-binary deployment keeps working.
type RateLimitService struct {
	once   sync.Once
	client *redis.Client
}

func (s *RateLimitService) getClient() *redis.Client {
	s.once.Do(func() {
		addr := config.GetRedisAddr()
		if addr == "" {
			return
		}
		s.client = redis.NewClient(&redis.Options{Addr: addr})
	})
	return s.client
}

// Allow counts one hit for (key, action) and reports whether the caller is
// still under limit within the window. Redis outages fail open with a log
// line rather than blocking logins.
func (s *RateLimitService) Allow(ctx context.Context, key string, action string, limit int, window time.Duration) bool {
	client := s.getClient()
	if client == nil {
		return true
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", action, key)
	count, err := client.Incr(ctx, redisKey).Result()
	if err != nil {
		logger.Warning("rate limit check failed:", err)
		return true
	}
	if count == 1 {
		client.Expire(ctx, redisKey, window)
	}
	return count <= int64(limit)
}
