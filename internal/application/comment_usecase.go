package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

type CommentUseCases struct {
	Repo   repo.CommentRepository
	Posts  repo.PostRepository
	Logger *logrus.Logger
}

func NewCommentUseCases(r repo.CommentRepository, posts repo.PostRepository, logger *logrus.Logger) *CommentUseCases {
	return &CommentUseCases{Repo: r, Posts: posts, Logger: logger}
}

func (uc *CommentUseCases) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	return uc.Repo.List(ctx, postID)
}

// Add does not validate content; callers check for empty input themselves.
func (uc *CommentUseCases) Add(ctx context.Context, postID, content string, replyTo *entity.CommentUser, parentCommentID string) (entity.Comment, error) {
	c, err := uc.Repo.Add(ctx, postID, entity.NewComment{
		Content:         content,
		ReplyTo:         replyTo,
		ParentCommentID: parentCommentID,
	})
	if err != nil {
		return entity.Comment{}, err
	}
	if uc.Posts != nil {
		if err := uc.Posts.IncrementComments(ctx, postID); err != nil && uc.Logger != nil {
			uc.Logger.WithError(err).WithField("post_id", postID).Warn("comment counter not updated")
		}
	}
	return c, nil
}

// Thread returns the reply forest of a post.
func (uc *CommentUseCases) Thread(ctx context.Context, postID string) ([]*entity.CommentNode, error) {
	comments, err := uc.Repo.List(ctx, postID)
	if err != nil {
		return nil, err
	}
	return entity.BuildCommentTree(comments), nil
}

func (uc *CommentUseCases) Render(ctx context.Context, postID string) ([]string, error) {
	forest, err := uc.Thread(ctx, postID)
	if err != nil {
		return nil, err
	}
	return entity.RenderCommentTree(forest), nil
}
