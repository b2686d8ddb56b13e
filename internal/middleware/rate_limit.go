package middleware

import (
	"net/http"
	"time"

	"dcn-community/internal/config"
	"dcn-community/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// PublicWriteLimiter throttles unauthenticated write endpoints per client IP.
func PublicWriteLimiter(cfg config.RateLimitConfig) fiber.Handler {
	max := cfg.Max
	if max <= 0 {
		max = 100
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(http.StatusTooManyRequests).JSON(errorBody(
				domain.CodeRateLimited,
				"Terlalu banyak permintaan. Silakan coba lagi nanti.",
				http.StatusTooManyRequests,
			))
		},
	})
}
