package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/ratelimit"
	"taskflow-api/pkg/utils"
)

// RateLimitMiddleware throttles clients per IP through the sliding window
// limiter. A nil limiter disables throttling. Limiter backend failures fail
// open so Redis outages do not take the API down with them.
func RateLimitMiddleware(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}

		result, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			logger.WarnContext(c.UserContext(), "Rate limiter unavailable", "error", err)
			return c.Next()
		}

		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
		}

		return c.Next()
	}
}
