package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

type ShopModule struct {
	Handler *handlers.ShopHandler
	JWT     *helpers.JWTManager
	Limits  Limits
}

func NewShopModule(h *handlers.ShopHandler, jwt *helpers.JWTManager, l Limits) *ShopModule {
	return &ShopModule{Handler: h, JWT: jwt, Limits: l}
}

func (m *ShopModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Limits.perIP("shop"), m.Handler.Products)
	rg.GET("/products/:id", m.Limits.perIP("shop"), m.Handler.Product)

	// Orders belong to a signed-in buyer.
	orders := rg.Group("/orders")
	orders.Use(middleware.Auth(m.JWT), m.Limits.perUser("orders"))
	{
		orders.POST("", m.Handler.PlaceOrder)
		orders.GET("", m.Handler.Orders)
		orders.GET("/:id", m.Handler.Order)
	}
}
