package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

// maxImageBytes caps multipart uploads for message images.
const maxImageBytes = 8 << 20

type MessagingHandler struct {
	Messaging *application.MessagingUseCases
	Logger    *logrus.Logger
}

func NewMessagingHandler(m *application.MessagingUseCases, logger *logrus.Logger) *MessagingHandler {
	return &MessagingHandler{Messaging: m, Logger: logger}
}

func (h *MessagingHandler) Conversations(c *gin.Context) {
	list, err := h.Messaging.GetConversations(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, list.Conversations, "conversations", map[string]any{"total": list.Total})
}

func (h *MessagingHandler) Messages(c *gin.Context) {
	items, err := h.Messaging.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "messages", map[string]any{"total": len(items)})
}

func (h *MessagingHandler) Send(c *gin.Context) {
	var req entity.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	msg, err := h.Messaging.SendMessage(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, msg, "message sent", nil)
}

func (h *MessagingHandler) MarkRead(c *gin.Context) {
	if err := h.Messaging.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "isRead": true}, "marked as read", nil)
}

// UploadImage expects a multipart form with an "image" file field.
func (h *MessagingHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", response.ErrorBody{Code: "invalid_payload"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Messaging.UploadImage(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"imageUri": url}, "image uploaded", nil)
}
