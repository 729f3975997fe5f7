package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// IPRateLimiter is a token-bucket limiter keyed by client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     float64 // tokens restored per second
	burst    int     // bucket capacity
}

type visitor struct {
	seen      time.Time
	remaining float64
}

// NewIPRateLimiter builds a limiter restoring rate tokens per second with the
// given bucket capacity. 120 requests/minute is rate=2, burst=120.
func NewIPRateLimiter(rate float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		burst:    burst,
	}
}

func (r *IPRateLimiter) allow(ip string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// drop buckets idle long enough to be full again
	idle := time.Duration(float64(r.burst)/r.rate) * time.Second
	for k, v := range r.visitors {
		if now.Sub(v.seen) > idle {
			delete(r.visitors, k)
		}
	}

	v, ok := r.visitors[ip]
	if !ok {
		r.visitors[ip] = &visitor{seen: now, remaining: float64(r.burst) - 1}
		return true
	}

	v.remaining += now.Sub(v.seen).Seconds() * r.rate
	if v.remaining > float64(r.burst) {
		v.remaining = float64(r.burst)
	}
	v.seen = now

	if v.remaining < 1 {
		return false
	}
	v.remaining--
	return true
}

func (r *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.rate <= 0 || r.burst <= 0 {
			c.Next()
			return
		}
		if !r.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
