// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 10
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting backed by Redis, using a
// fixed-window counter per client IP.
type RateLimiter struct {
	client         *redis.Client
	enabled        bool
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{
		client:         client,
		enabled:        true,
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
	}
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, enabled bool, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		enabled:        enabled,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c.Request.Context(), clientIP)
		if err != nil {
			// Redis outages must not take the login flow down with them.
			slog.WarnContext(c.Request.Context(), "rate limiter check failed",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the counter for the given key and reports whether the
// request is within the limit for the current window.
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("rate_limit:login:%s", key)

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// The first hit in a window establishes its expiry.
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	return count <= int64(rl.maxAttempts), nil
}

// Reset clears the rate limit state for a given client IP (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context, clientIP string) error {
	return rl.client.Del(ctx, fmt.Sprintf("rate_limit:login:%s", clientIP)).Err()
}
