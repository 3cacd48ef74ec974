package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Limits  Limits
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, l Limits) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Limits: l}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", m.Limits.strict("login", 10), m.Handler.Login)
	auth.POST("/register", m.Limits.strict("register", 5), m.Handler.Register)

	// Requests without a token act as the guest.
	session := auth.Group("/")
	session.Use(middleware.OptionalAuth(m.JWT))
	{
		session.POST("/logout", m.Handler.Logout)
		session.GET("/me", m.Handler.Me)
	}
}
