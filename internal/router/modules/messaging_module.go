package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

type MessagingModule struct {
	Handler *handlers.MessagingHandler
	JWT     *helpers.JWTManager
	Limits  Limits
}

func NewMessagingModule(h *handlers.MessagingHandler, jwt *helpers.JWTManager, l Limits) *MessagingModule {
	return &MessagingModule{Handler: h, JWT: jwt, Limits: l}
}

func (m *MessagingModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/")
	g.Use(middleware.OptionalAuth(m.JWT), m.Limits.perIP("messaging"), m.Limits.perUser("messaging"))
	{
		g.GET("/conversations", m.Handler.Conversations)
		g.GET("/conversations/:id/messages", m.Handler.Messages)
		g.POST("/messages", m.Handler.Send)
		g.POST("/messages/:id/read", m.Handler.MarkRead)
		g.POST("/messages/images", m.Handler.UploadImage)
	}
}
