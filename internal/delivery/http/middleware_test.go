package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{"exact match", "https://dashboard.example.com", []string{"https://dashboard.example.com"}, true},
		{"global wildcard", "https://anything.example.org", []string{"*"}, true},
		{"port wildcard", "http://localhost:5173", []string{"http://localhost:*"}, true},
		{"matches second entry", "http://localhost:3000", []string{"https://dashboard.example.com", "http://localhost:3000"}, true},
		{"no match", "http://evil.com", []string{"https://dashboard.example.com"}, false},
		{"empty origin with wildcard", "", []string{"*"}, false},
		{"empty allowed list", "http://localhost:3000", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowedOrigins)
			if got != tt.want {
				t.Errorf("isAllowedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		method     string
		wantStatus int
		wantCORS   bool
	}{
		{"allowed origin - GET", "http://localhost:3000", http.MethodGet, http.StatusOK, true},
		{"allowed origin - preflight", "http://localhost:3000", http.MethodOptions, http.StatusNoContent, true},
		{"disallowed origin", "http://evil.com", http.MethodGet, http.StatusOK, false},
		{"no origin header", "", http.MethodGet, http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware([]string{"http://localhost:*"}))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "OK")
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			corsHeader := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantCORS {
				if corsHeader != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %s, want %s", corsHeader, tt.origin)
				}
				if w.Header().Get("Access-Control-Allow-Methods") == "" {
					t.Errorf("Access-Control-Allow-Methods not set")
				}
			} else if corsHeader != "" {
				t.Errorf("Access-Control-Allow-Origin should not be set, got %s", corsHeader)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	newRouter := func(seen *string) *gin.Engine {
		router := gin.New()
		router.Use(RequestIDMiddleware())
		router.GET("/test", func(c *gin.Context) {
			*seen = RequestIDFromContext(c)
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("generates an id when missing", func(t *testing.T) {
		var seen string
		w := httptest.NewRecorder()
		newRouter(&seen).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		newRouter(&seen).ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	newRouter := func(perMinute, burst int) *gin.Engine {
		router := gin.New()
		router.Use(RateLimitMiddleware(perMinute, burst))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	do := func(router *gin.Engine, remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("limits per client IP", func(t *testing.T) {
		router := newRouter(1, 2)

		assert.Equal(t, http.StatusOK, do(router, "10.0.0.1:1234"))
		assert.Equal(t, http.StatusOK, do(router, "10.0.0.1:1234"))
		assert.Equal(t, http.StatusTooManyRequests, do(router, "10.0.0.1:1234"))

		// a different client has its own bucket
		assert.Equal(t, http.StatusOK, do(router, "10.0.0.2:1234"))
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		router := newRouter(0, 0)

		for i := 0; i < 20; i++ {
			assert.Equal(t, http.StatusOK, do(router, "10.0.0.1:1234"))
		}
	})
}

func TestIPRateLimiter_EvictsIdleBuckets(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(60, 5)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = clock

	for i := 0; i < 50; i++ {
		limiter.allow(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Len(t, limiter.limiters, 50)

	// still inside the idle window: nothing is swept
	clock = clock.Add(30 * time.Second)
	assert.True(t, limiter.allow("10.0.1.1"))
	assert.Len(t, limiter.limiters, 51)

	// every earlier bucket has been idle for the full window
	clock = clock.Add(45 * time.Second)
	assert.True(t, limiter.allow("10.0.1.2"))
	assert.Len(t, limiter.limiters, 2)
	assert.Contains(t, limiter.limiters, "10.0.1.1")
	assert.Contains(t, limiter.limiters, "10.0.1.2")
}

func TestIPRateLimiter_EvictedBucketWasFull(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(60, 2)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = clock

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))

	// after the idle window the old bucket would have refilled anyway
	clock = clock.Add(time.Minute)
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))
}
