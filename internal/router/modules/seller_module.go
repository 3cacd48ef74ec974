package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

type SellerModule struct {
	Handler *handlers.SellerHandler
	JWT     *helpers.JWTManager
	Limits  Limits
}

func NewSellerModule(h *handlers.SellerHandler, jwt *helpers.JWTManager, l Limits) *SellerModule {
	return &SellerModule{Handler: h, JWT: jwt, Limits: l}
}

func (m *SellerModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/seller")
	g.Use(middleware.Auth(m.JWT), m.Limits.perUser("seller"))
	{
		g.GET("/listings", m.Handler.List)
		g.POST("/listings", m.Handler.Create)
		g.PUT("/listings/:id", m.Handler.Update)
		g.DELETE("/listings/:id", m.Handler.Delete)
	}
}
