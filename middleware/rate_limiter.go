package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client IP on the route it wraps, using a
// fixed window. Counters live in Redis so every instance shares the same
// window, and the snapshot is left on the context for the response envelope.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		counterKey := fmt.Sprintf("throttle:%s:%s %s", c.ClientIP(), c.Request.Method, c.FullPath())

		count, err := config.RedisClient.Incr(config.Ctx, counterKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limit check failed"))
			c.Abort()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, counterKey, window)
		}

		ttl, err := config.RedisClient.TTL(config.Ctx, counterKey).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		rate := &models.RateLimiter{
			Limit:      maxRequests,
			Remaining:  remaining,
			ResetAt:    time.Now().Add(ttl),
			RetryAfter: int(ttl.Seconds()),
		}
		c.Set(models.RateLimitContextKey, rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests. Please try again later",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
