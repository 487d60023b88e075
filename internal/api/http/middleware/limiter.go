package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/jasimarif/psychology-app/config"
)

func NewLimiterWithRedis(rdb *redis.Client, cfg config.RateLimitConfig) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)

	limit := limiter.Config{
		Storage: storage,

		// sliding window
		Max:               cfg.Max,
		Expiration:        time.Duration(cfg.WindowSeconds) * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	}
	if limit.Max <= 0 {
		limit.Max = 20
	}
	if limit.Expiration <= 0 {
		limit.Expiration = 30 * time.Second
	}
	return limiter.New(limit)
}
