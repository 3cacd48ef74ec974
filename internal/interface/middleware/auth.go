package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

const CtxUserIDKey = "userID"

// tokenFrom reads the access token from the cookie, then the Authorization header.
func tokenFrom(c *gin.Context) string {
	if token, err := c.Cookie(helpers.AccessTokenCookie); err == nil && token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func setViewer(c *gin.Context, userID string) {
	c.Set(CtxUserIDKey, userID)
	c.Request = c.Request.WithContext(entity.ContextWithViewer(c.Request.Context(), userID))
}

// Auth rejects requests without a valid access token and makes the token's
// user the viewer of the request.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}
		setViewer(c, claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets the viewer from a valid token. Anonymous requests act
// as the guest, never as the installation session user.
func OptionalAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := entity.GuestID
		if token := tokenFrom(c); token != "" {
			if claims, err := jwt.ParseAccessToken(token); err == nil {
				viewer = claims.UserID
			}
		}
		setViewer(c, viewer)
		c.Next()
	}
}
