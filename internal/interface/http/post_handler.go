package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

type PostHandler struct {
	Posts    *application.PostUseCases
	Comments *application.CommentUseCases
	Logger   *logrus.Logger
}

func NewPostHandler(p *application.PostUseCases, cm *application.CommentUseCases, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Posts: p, Comments: cm, Logger: logger}
}

func (h *PostHandler) List(c *gin.Context) {
	items, err := h.Posts.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "posts", map[string]any{"total": len(items)})
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if p == nil {
		notFound(c, "post")
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

type toggleLikeRequest struct {
	Liked *bool `json:"liked" binding:"required"`
}

// ToggleLike takes the client's current state in the body.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	state, err := h.Posts.ToggleLike(c.Request.Context(), c.Param("id"), *req.Liked)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, state, "like updated", nil)
}

func (h *PostHandler) FlipLike(c *gin.Context) {
	state, err := h.Posts.FlipLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, state, "like updated", nil)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	items, err := h.Comments.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "comments", map[string]any{"total": len(items)})
}

func (h *PostHandler) CommentTree(c *gin.Context) {
	forest, err := h.Comments.Thread(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, forest, "comment tree", nil)
}

type addCommentRequest struct {
	Content         string              `json:"content"`
	ReplyTo         *entity.CommentUser `json:"replyTo"`
	ParentCommentID string              `json:"parentCommentId"`
}

func (h *PostHandler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	cm, err := h.Comments.Add(c.Request.Context(), c.Param("id"), req.Content, req.ReplyTo, req.ParentCommentID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment added", nil)
}
