package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
)

// Limits holds the shared limiter and the default window. A nil Limiter
// disables rate limiting.
type Limits struct {
	Limiter *middleware.Limiter
	Max     int
	Window  time.Duration
}

func (l Limits) perIP(name string) gin.HandlerFunc {
	return l.Limiter.Limit(middleware.Rule{Name: name + ":ip", Max: l.Max, Window: l.Window, Key: middleware.KeyByIP()})
}

func (l Limits) perUser(name string) gin.HandlerFunc {
	return l.Limiter.Limit(middleware.Rule{Name: name + ":user", Max: l.Max, Window: l.Window, Key: middleware.KeyByUserID()})
}

// strict is used for credential endpoints.
func (l Limits) strict(name string, max int) gin.HandlerFunc {
	return l.Limiter.Limit(middleware.Rule{Name: name, Max: max, Window: time.Minute, Key: middleware.KeyByIPAndPath()})
}
