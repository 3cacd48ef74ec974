package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

type ProfileHandler struct {
	Profiles *application.ProfileUseCases
	Logger   *logrus.Logger
}

func NewProfileHandler(p *application.ProfileUseCases, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: p, Logger: logger}
}

func (h *ProfileHandler) List(c *gin.Context) {
	items, err := h.Profiles.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "profiles", map[string]any{"total": len(items)})
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.Profiles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if p == nil {
		notFound(c, "profile")
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

func (h *ProfileHandler) Follow(c *gin.Context) {
	n, err := h.Profiles.Follow(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "following": true, "followersCount": n}, "followed", nil)
}

func (h *ProfileHandler) Unfollow(c *gin.Context) {
	n, err := h.Profiles.Unfollow(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "following": false, "followersCount": n}, "unfollowed", nil)
}

func (h *ProfileHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	items, err := h.Profiles.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "search results", map[string]any{"total": len(items)})
}
