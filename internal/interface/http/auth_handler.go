package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

type AuthHandler struct {
	Auth    *application.AuthUseCases
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewAuthHandler(auth *application.AuthUseCases, jwt *helpers.JWTManager, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, JWT: jwt, Cookies: cookies, Logger: logger}
}

// Field checks live in the use case so they run for every caller.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.issue(c, http.StatusOK, u, "login successful")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.issue(c, http.StatusCreated, u, "registered")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context()); err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Me returns the signed-in viewer; data is null for guests.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Auth.GetCurrentUser(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "current user", nil)
}

func (h *AuthHandler) issue(c *gin.Context, status int, u *entity.User, msg string) {
	token, exp, err := h.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetAccess(c, token, exp)
	response.Success(c, status, u, msg, map[string]any{"access_token": token, "access_expires_at": exp})
}
