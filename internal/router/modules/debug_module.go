package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
)

// DebugModule exposes expvar counters at /api/debug/vars.
type DebugModule struct {
	Limits Limits
}

func NewDebugModule(l Limits) *DebugModule { return &DebugModule{Limits: l} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Private networks bypass the limiter.
	rl := m.Limits.Limiter.Limit(middleware.Rule{
		Name:   "debug",
		Max:    m.Limits.Max,
		Window: m.Limits.Window,
		Key:    middleware.KeyByIP(),
		Allow:  middleware.AllowPrivateIP(),
	})
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
