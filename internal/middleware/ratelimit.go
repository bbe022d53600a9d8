package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/ratelimit"
)

// RateLimit allows limit requests per client IP and route per window.
// A counter failure lets the request through.
func RateLimit(counter ratelimit.Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		route := c.FullPath()
		key := route + ":" + c.ClientIP()

		count, left, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limit counter", "error", err)
			c.Next()
			return
		}

		remaining := max(limit-int(count), 0)
		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(left).Unix(), 10))

		if int(count) > limit {
			h.Set("Retry-After", strconv.Itoa(int(math.Ceil(left.Seconds()))))
			rateLimitedTotal.WithLabelValues(route).Inc()
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, try again later.")
			return
		}

		c.Next()
	}
}
