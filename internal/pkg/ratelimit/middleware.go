package ratelimit

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/mentionlookup/internal/pkg/response"
)

// KeyFunc picks the bucket a request is counted against
type KeyFunc func(c *gin.Context) string

// Middleware creates a rate limiting middleware for Gin. Requests are keyed
// by keyFunc, falling back to the client IP when it returns "" or is nil.
func Middleware(limiter *RateLimiter, keyFunc KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		if keyFunc != nil {
			key = keyFunc(c)
		}
		if key == "" {
			key = c.ClientIP()
		}

		d := limiter.Allow(key)
		setHeaders(c, d)

		if !d.Allowed {
			retry := int(math.Ceil(d.RetryAfter(time.Now()).Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))

			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", gin.H{
				"retry_after": strconv.Itoa(retry) + "s",
				"reset_time":  d.ResetAt.Format(time.RFC3339),
				"limit":       d.Limit,
				"remaining":   d.Remaining,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func setHeaders(c *gin.Context, d Decision) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	c.Header("X-RateLimit-Reset", d.ResetAt.Format(time.RFC3339))
}
