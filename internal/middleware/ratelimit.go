package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window limiter backed by redis INCR/EXPIRE.
type RateLimiter struct {
	redis  *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRateLimiter(r *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: r, prefix: prefix, limit: limit, window: window}
}

// MiddlewareByKey limits by whatever keyFunc extracts from the request
// (caller id, IP). A nil redis client makes the limiter a no-op.
func (r *RateLimiter) MiddlewareByKey(keyFunc func(c *fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r == nil || r.redis == nil {
			return c.Next()
		}
		redisKey := fmt.Sprintf("%s:%s", r.prefix, keyFunc(c))
		count, err := r.redis.Incr(c.Context(), redisKey).Result()
		if err != nil {
			// limiter trouble must not take the upload path down
			return c.Next()
		}
		if count == 1 {
			r.redis.Expire(c.Context(), redisKey, r.window)
		}
		if count > int64(r.limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many uploads, slow down"})
		}
		return c.Next()
	}
}
