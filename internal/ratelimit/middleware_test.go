package ratelimit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zachweston123/artwalls-payments/internal/cache"
	"github.com/zachweston123/artwalls-payments/internal/ratelimit"
)

func TestMiddleware_Returns429WithRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := ratelimit.New(cache.NewMemoryStore(0))
	rules := []ratelimit.Rule{{
		Name:   "per-ip",
		Limit:  1,
		Window: time.Minute,
		KeyFn:  ratelimit.ByClientIP,
	}}

	router := gin.New()
	router.POST("/checkout", ratelimit.Middleware(limiter, "checkout", rules), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	var body struct {
		Error         string `json:"error"`
		RetryAfterSec int    `json:"retryAfterSec"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "rate_limited", body.Error)
	assert.Greater(t, body.RetryAfterSec, 0)
	assert.LessOrEqual(t, body.RetryAfterSec, 60)
}
