package router

import (
	"github.com/oksasatya/creator-commerce/internal/container"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/internal/router/modules"
)

// InitModules registers every feature module built by the container and the
// store health probe. Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	limits := modules.Limits{Max: c.Config.RateLimitMax, Window: c.Config.RateLimitWindow}
	if c.Config.RateLimitEnabled && c.Infra.Redis != nil {
		limits.Limiter = middleware.NewLimiter(c.Infra.Redis, c.Config.StorePrefix, c.Logger)
	}

	r.Probe("store", c.DB.Store.Ping)

	r.Add(modules.NewAuthModule(c.AuthHandler, c.JWT, limits))
	r.Add(modules.NewSocialModule(c.ProfileHandler, c.PostHandler, c.JWT, limits))
	r.Add(modules.NewMessagingModule(c.MessagingHandler, c.JWT, limits))
	r.Add(modules.NewShopModule(c.ShopHandler, c.JWT, limits))
	r.Add(modules.NewSellerModule(c.SellerHandler, c.JWT, limits))
	r.Add(modules.NewOnboardingModule(c.OnboardingHandler, c.JWT, limits))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(limits))
	}
}
