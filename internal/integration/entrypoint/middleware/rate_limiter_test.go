package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func setupRateLimitedRouter(t *testing.T, limiter *RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func doLogin(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewRateLimiterWithConfig(client, true, 3, time.Minute)
	router := setupRateLimitedRouter(t, limiter)

	for i := 0; i < 3; i++ {
		if code := doLogin(router); code != http.StatusOK {
			t.Fatalf("request %d: expected status %d, got %d", i+1, http.StatusOK, code)
		}
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewRateLimiterWithConfig(client, true, 3, time.Minute)
	router := setupRateLimitedRouter(t, limiter)

	for i := 0; i < 3; i++ {
		doLogin(router)
	}

	if code := doLogin(router); code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d after exceeding limit, got %d", http.StatusTooManyRequests, code)
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRateLimiterWithConfig(client, true, 2, time.Minute)
	router := setupRateLimitedRouter(t, limiter)

	doLogin(router)
	doLogin(router)
	if code := doLogin(router); code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d before window reset, got %d", http.StatusTooManyRequests, code)
	}

	mr.FastForward(2 * time.Minute)

	if code := doLogin(router); code != http.StatusOK {
		t.Fatalf("expected status %d after window reset, got %d", http.StatusOK, code)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewRateLimiterWithConfig(client, false, 1, time.Minute)
	router := setupRateLimitedRouter(t, limiter)

	for i := 0; i < 5; i++ {
		if code := doLogin(router); code != http.StatusOK {
			t.Fatalf("request %d: expected status %d when disabled, got %d", i+1, http.StatusOK, code)
		}
	}
}
