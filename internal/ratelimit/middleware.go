package ratelimit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Middleware gates a route behind the limiter. Blocked requests get a 429
// with a Retry-After header and a machine-readable body; the handler chain
// is aborted before any work happens.
func Middleware(limiter *Limiter, route Route, rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := RequestContext{
			ClientIP: c.ClientIP(),
			UserID:   c.GetHeader("X-User-ID"),
		}

		decision := limiter.Check(c.Request.Context(), route, rules, rc)
		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(decision.RetryAfterSec))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":         "rate_limited",
				"retryAfterSec": decision.RetryAfterSec,
			})
			return
		}

		c.Next()
	}
}
