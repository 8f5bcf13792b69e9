package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(math.Ceil(limiter.RetryAfter().Seconds())))

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
