package repository

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
)

// ProfileRepository serves creator profiles and follow counters.
type ProfileRepository interface {
	List(ctx context.Context) ([]entity.CreatorProfile, error)
	GetByID(ctx context.Context, id string) (*entity.CreatorProfile, error)
	Follow(ctx context.Context, id string) (int, error)
	Unfollow(ctx context.Context, id string) (int, error)
}

// PostRepository serves the feed and the viewer's like relation.
type PostRepository interface {
	List(ctx context.Context) ([]entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Like(ctx context.Context, id string) (entity.LikeState, error)
	Unlike(ctx context.Context, id string) (entity.LikeState, error)
	IsLiked(ctx context.Context, id string) (bool, error)
	// ToggleLike flips the stored like relation and returns the new state.
	ToggleLike(ctx context.Context, id string) (entity.LikeState, error)
	IncrementComments(ctx context.Context, id string) error
}

// CommentRepository stores comments of every post in insertion order.
type CommentRepository interface {
	List(ctx context.Context, postID string) ([]entity.Comment, error)
	Add(ctx context.Context, postID string, in entity.NewComment) (entity.Comment, error)
}

// MessageRepository stores direct messages.
type MessageRepository interface {
	ListConversations(ctx context.Context) ([]entity.Conversation, error)
	ListMessages(ctx context.Context, counterpartID string) ([]entity.Message, error)
	Send(ctx context.Context, req entity.SendMessageRequest) (entity.Message, error)
	MarkAsRead(ctx context.Context, messageID string) error
}

// OnboardingRepository stores the onboarding wizard result.
type OnboardingRepository interface {
	Options(ctx context.Context) (entity.OnboardingOptions, error)
	Selection(ctx context.Context, userID string) (*entity.OnboardingSelection, error)
	SaveSelection(ctx context.Context, sel entity.OnboardingSelection) error
	Settings(ctx context.Context) ([]entity.SettingsSection, error)
}
