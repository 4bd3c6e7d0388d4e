package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storeinsights/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader     = "X-Request-ID"
	contextKeyRequestID = "request_id"
)

// CORSMiddleware handles CORS for browser dashboards
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is allowed
		if isAllowedOrigin(origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range allowedOrigins {
		// Support wildcard matching such as "*" or "http://localhost:*"
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		} else if origin == allowed {
			return true
		}
	}
	return false
}

// RequestIDMiddleware assigns an identifier to every request unless the caller provided one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(contextKeyRequestID, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFromContext extracts the request identifier if available
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

// ipRateLimiter keeps one token bucket per client IP.
// Buckets idle long enough to have refilled are dropped on the next sweep.
type ipRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*ipBucket
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	idleTTL := interval * time.Duration(burst)
	if idleTTL < time.Minute {
		idleTTL = time.Minute
	}
	return &ipRateLimiter{
		limiters:  make(map[string]*ipBucket),
		limit:     rate.Every(interval),
		burst:     burst,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}
	bucket, ok := l.limiters[ip]
	if !ok {
		bucket = &ipBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = bucket
	}
	bucket.lastSeen = now
	l.mu.Unlock()

	return bucket.limiter.AllowN(now, 1)
}

// sweep removes idle buckets. Caller holds mu.
func (l *ipRateLimiter) sweep(now time.Time) {
	for ip, bucket := range l.limiters {
		if now.Sub(bucket.lastSeen) >= l.idleTTL {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

// RateLimitMiddleware applies a per-IP token bucket keyed on c.ClientIP().
// perMinute <= 0 disables limiting.
func RateLimitMiddleware(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := newIPRateLimiter(perMinute, burst)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": domain.ErrRateLimited.Error(),
			})
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs requests
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}
