package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

type OnboardingModule struct {
	Handler *handlers.OnboardingHandler
	JWT     *helpers.JWTManager
	Limits  Limits
}

func NewOnboardingModule(h *handlers.OnboardingHandler, jwt *helpers.JWTManager, l Limits) *OnboardingModule {
	return &OnboardingModule{Handler: h, JWT: jwt, Limits: l}
}

func (m *OnboardingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/onboarding/options", m.Handler.Options)
	rg.GET("/settings", m.Handler.SettingsSections)
	rg.POST("/onboarding", middleware.Auth(m.JWT), m.Limits.perUser("onboarding"), m.Handler.Save)
}
