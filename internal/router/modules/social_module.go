package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

// SocialModule serves creator profiles, posts and comments.
type SocialModule struct {
	Profiles *handlers.ProfileHandler
	Posts    *handlers.PostHandler
	JWT      *helpers.JWTManager
	Limits   Limits
}

func NewSocialModule(p *handlers.ProfileHandler, ph *handlers.PostHandler, jwt *helpers.JWTManager, l Limits) *SocialModule {
	return &SocialModule{Profiles: p, Posts: ph, JWT: jwt, Limits: l}
}

func (m *SocialModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/")
	g.Use(middleware.OptionalAuth(m.JWT), m.Limits.perIP("social"))
	{
		g.GET("/profiles", m.Profiles.List)
		g.GET("/profiles/search", m.Profiles.Search)
		g.GET("/profiles/:id", m.Profiles.Get)
		g.POST("/profiles/:id/follow", m.Profiles.Follow)
		g.DELETE("/profiles/:id/follow", m.Profiles.Unfollow)

		g.GET("/posts", m.Posts.List)
		g.GET("/posts/:id", m.Posts.Get)
		g.POST("/posts/:id/like", m.Posts.ToggleLike)
		g.POST("/posts/:id/like/flip", m.Posts.FlipLike)
		g.GET("/posts/:id/comments", m.Posts.ListComments)
		g.GET("/posts/:id/comments/tree", m.Posts.CommentTree)
		g.POST("/posts/:id/comments", m.Posts.AddComment)
	}
}
