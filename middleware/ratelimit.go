package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/chiro-directory/config"
	"github.com/ariebrainware/chiro-directory/util"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	// Rate limiting defaults
	defaultRateLimit  = 10
	defaultRateWindow = time.Minute
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// Client overrides the shared Redis client; nil falls back to config.GetRedisClient.
	Client *redis.Client
	// OnLimited writes the rejection response. Defaults to the JSON 429 envelope.
	OnLimited gin.HandlerFunc
}

// RateLimiter creates a fixed-window rate limiting middleware keyed by path and client IP.
// Counters live in Redis when a client is available, otherwise in process memory.
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}
	if cfg.OnLimited == nil {
		cfg.OnLimited = rejectJSON
	}
	local := newLocalCounter(cfg.Window)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		endpoint := c.Request.URL.Path
		key := rateLimitKey(endpoint, clientIP)

		rdb := cfg.Client
		if rdb == nil {
			rdb = config.GetRedisClient()
		}

		var allowed bool
		if rdb == nil {
			allowed = local.incr(key, cfg.Window) <= int64(cfg.Limit)
		} else {
			var err error
			allowed, err = checkRateLimit(c.Request.Context(), rdb, key, cfg.Limit, cfg.Window)
			if err != nil {
				// Redis trouble must not block submissions.
				util.LogAccessEvent(util.AccessEvent{
					EventType: util.EventRateLimitError,
					IP:        clientIP,
					Message:   fmt.Sprintf("Rate limit check failed: %v", err),
				})
				c.Next()
				return
			}
		}

		if !allowed {
			util.LogRateLimitExceeded(clientIP, endpoint)
			cfg.OnLimited(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func rejectJSON(c *gin.Context) {
	util.CallTooManyRequests(c, util.APIErrorParams{
		Msg: "Too many submissions. Please try again later.",
		Err: fmt.Errorf("rate limit exceeded"),
	})
}

func rateLimitKey(endpoint, clientIP string) string {
	return fmt.Sprintf("ratelimit:%s:%s", endpoint, clientIP)
}

// checkRateLimit increments the window counter for key in Redis.
// INCR and EXPIRE NX run in one MULTI block, so every counter carries a TTL
// and the first hit of a window fixes its expiry.
func checkRateLimit(ctx context.Context, rdb *redis.Client, key string, limit int, window time.Duration) (bool, error) {
	pipe := rdb.TxPipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incrCmd.Val() <= int64(limit), nil
}

// localCounter is the in-process fallback used when Redis is not configured.
type localCounter struct {
	c *cache.Cache
}

func newLocalCounter(window time.Duration) *localCounter {
	return &localCounter{c: cache.New(window, 2*window)}
}

// incr bumps the counter for key, opening a new window of the given length when none is active.
func (l *localCounter) incr(key string, window time.Duration) int64 {
	_ = l.c.Add(key, int64(0), window)
	n, err := l.c.IncrementInt64(key, 1)
	if err != nil {
		// the window expired between Add and IncrementInt64
		l.c.Set(key, int64(1), window)
		return 1
	}
	return n
}
