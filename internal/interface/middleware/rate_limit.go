package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/pkg/response"
)

// ipFromCtx extracts the client IP from Gin context, falling back to "unknown"
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func routeOf(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}

// KeyFunc builds the per-client part of a rate-limit key.
type KeyFunc func(c *gin.Context) string

// AllowFunc returning true bypasses the limit.
type AllowFunc func(*gin.Context) bool

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string { return "ip:" + ipFromCtx(c) }
}

func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string { return "path:" + routeOf(c) + ":ip:" + ipFromCtx(c) }
}

// KeyByUserID limits signed-in users by id and everyone else by IP.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if uid := c.GetString(CtxUserIDKey); uid != "" {
			return "user:" + uid
		}
		return "user:anon:ip:" + ipFromCtx(c)
	}
}

// Rule is one fixed-window limit.
type Rule struct {
	Name   string
	Max    int
	Window time.Duration
	Key    KeyFunc
	Allow  AllowFunc
}

// Returns {count, remaining window in ms}; the window starts on the first hit.
var hitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Limiter enforces Rules with counters in Redis. A nil Limiter, or one
// without a client, lets everything through. Redis errors fail open.
type Limiter struct {
	Redis  *redis.Client
	Prefix string
	Logger *logrus.Logger
}

func NewLimiter(rdb *redis.Client, prefix string, logger *logrus.Logger) *Limiter {
	return &Limiter{Redis: rdb, Prefix: prefix, Logger: logger}
}

func (l *Limiter) Limit(rule Rule) gin.HandlerFunc {
	if l == nil || l.Redis == nil || rule.Max <= 0 || rule.Window <= 0 || rule.Key == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if (rule.Allow != nil && rule.Allow(c)) || strings.EqualFold(c.Request.Method, http.MethodOptions) {
			c.Next()
			return
		}

		key := l.Prefix + "rl:" + rule.Name + ":" + rule.Key(c)
		res, err := hitScript.Run(c.Request.Context(), l.Redis, []string{key}, rule.Window.Milliseconds()).Int64Slice()
		if err != nil || len(res) != 2 {
			if l.Logger != nil {
				l.Logger.WithError(err).WithField("rule", rule.Name).Warn("rate limit check failed; allowing request")
			}
			c.Next()
			return
		}
		count, resetSec := int(res[0]), 0
		if res[1] > 0 {
			resetSec = int((time.Duration(res[1]) * time.Millisecond).Round(time.Second).Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(rule.Max-count, 0)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > rule.Max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error(c, http.StatusTooManyRequests, "rate limit exceeded", response.ErrorBody{Code: "rate_limited"})
			return
		}
		c.Next()
	}
}
