package storage

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type CommentRepository struct {
	comments collection[entity.Comment]
	users    repository.UserRepository
}

func NewCommentRepository(db *DB, users repository.UserRepository) *CommentRepository {
	return &CommentRepository{
		comments: newCollection(db, kvstore.KeyComments, fixtureComments),
		users:    users,
	}
}

// List returns the comments of one post in insertion order.
func (r *CommentRepository) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	all := r.comments.all(ctx)
	out := make([]entity.Comment, 0, len(all))
	for _, c := range all {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Add appends a comment authored by the current viewer. A parent must be a
// comment of the same post, otherwise ErrNotFound is returned.
func (r *CommentRepository) Add(ctx context.Context, postID string, in entity.NewComment) (entity.Comment, error) {
	db := r.comments.db
	c := entity.Comment{
		ID:              db.NewID(),
		PostID:          postID,
		User:            r.author(ctx),
		Content:         in.Content,
		CreatedAt:       db.Now(),
		ParentCommentID: in.ParentCommentID,
	}
	if in.ReplyTo != nil {
		reply := *in.ReplyTo
		c.ReplyTo = &reply
	}
	err := r.comments.mutate(ctx, func(items []entity.Comment) ([]entity.Comment, error) {
		if c.ParentCommentID != "" {
			if _, ok := find(items, func(x entity.Comment) bool { return x.ID == c.ParentCommentID && x.PostID == postID }); !ok {
				return nil, repository.ErrNotFound
			}
		}
		return append(items, c), nil
	})
	if err != nil {
		return entity.Comment{}, err
	}
	return c, nil
}

func (r *CommentRepository) author(ctx context.Context) entity.CommentUser {
	id := r.comments.db.viewerID(ctx)
	if r.users != nil {
		if u, err := r.users.GetByID(ctx, id); err == nil && u != nil {
			return entity.CommentUser{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
		}
	}
	return entity.CommentUser{ID: id, Name: "You"}
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
