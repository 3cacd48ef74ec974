package application

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

// MaxMessageLength is measured in characters on the content as submitted.
const MaxMessageLength = 1000

type MessagingUseCases struct {
	Repo     repo.MessageRepository
	Uploader ImageUploader
	Viewer   ViewerResolver
	Metrics  *Metrics
}

func NewMessagingUseCases(r repo.MessageRepository, up ImageUploader, v ViewerResolver, m *Metrics) *MessagingUseCases {
	return &MessagingUseCases{Repo: r, Uploader: up, Viewer: v, Metrics: m}
}

func (uc *MessagingUseCases) GetConversations(ctx context.Context) (entity.ConversationList, error) {
	convs, err := uc.Repo.ListConversations(ctx)
	if err != nil {
		return entity.ConversationList{}, err
	}
	if convs == nil {
		convs = []entity.Conversation{}
	}
	return entity.ConversationList{Conversations: convs, Total: len(convs)}, nil
}

func (uc *MessagingUseCases) GetMessages(ctx context.Context, conversationID string) ([]entity.Message, error) {
	if conversationID == "" {
		return nil, uc.Metrics.rejected("messaging.get_messages", invalid("conversationId", "conversation id is required"))
	}
	return uc.Repo.ListMessages(ctx, conversationID)
}

func (uc *MessagingUseCases) SendMessage(ctx context.Context, req entity.SendMessageRequest) (entity.Message, error) {
	trimmed := strings.TrimSpace(req.Content)
	switch {
	case trimmed == "":
		return entity.Message{}, uc.Metrics.rejected("messaging.send", invalid("content", "message content is required"))
	case req.ReceiverID == "":
		return entity.Message{}, uc.Metrics.rejected("messaging.send", invalid("receiverId", "receiver is required"))
	case utf8.RuneCountInString(req.Content) > MaxMessageLength:
		return entity.Message{}, uc.Metrics.rejected("messaging.send", invalid("content", "message exceeds 1000 characters"))
	}
	req.Content = trimmed
	msg, err := uc.Repo.Send(ctx, req)
	if err != nil {
		return entity.Message{}, err
	}
	uc.Metrics.messageSent()
	return msg, nil
}

func (uc *MessagingUseCases) MarkAsRead(ctx context.Context, messageID string) error {
	if messageID == "" {
		return uc.Metrics.rejected("messaging.mark_read", invalid("messageId", "message id is required"))
	}
	return uc.Repo.MarkAsRead(ctx, messageID)
}

// UploadImage stores an attachment and returns the URL to send as ImageURI.
func (uc *MessagingUseCases) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", uc.Metrics.rejected("messaging.upload_image", invalid("file", "only images can be attached"))
	}
	if uc.Uploader == nil {
		return "", ErrUploadsDisabled
	}
	viewer := entity.GuestID
	if uc.Viewer != nil {
		viewer = uc.Viewer.ViewerID(ctx)
	}
	return uc.Uploader.Upload(ctx, helpers.MessageImagePath(viewer, uuid.NewString(), filename), contentType, r)
}
