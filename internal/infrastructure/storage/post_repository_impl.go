package storage

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type PostRepository struct {
	posts collection[entity.Post]
}

func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{posts: newCollection(db, kvstore.KeyPosts, fixturePosts)}
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	return r.posts.all(ctx), nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	items := r.posts.all(ctx)
	i, ok := find(items, func(p entity.Post) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	p := items[i]
	return &p, nil
}

func (r *PostRepository) Like(ctx context.Context, id string) (entity.LikeState, error) {
	return r.setLiked(ctx, id, true)
}

func (r *PostRepository) Unlike(ctx context.Context, id string) (entity.LikeState, error) {
	return r.setLiked(ctx, id, false)
}

func (r *PostRepository) IsLiked(ctx context.Context, id string) (bool, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, repository.ErrNotFound
	}
	return p.IsLiked, nil
}

func (r *PostRepository) ToggleLike(ctx context.Context, id string) (entity.LikeState, error) {
	var state entity.LikeState
	err := r.posts.mutate(ctx, func(items []entity.Post) ([]entity.Post, error) {
		i, ok := find(items, func(p entity.Post) bool { return p.ID == id })
		if !ok {
			return nil, repository.ErrNotFound
		}
		state = items[i].SetLiked(!items[i].IsLiked)
		return items, nil
	})
	if err != nil {
		return entity.LikeState{}, err
	}
	return state, nil
}

func (r *PostRepository) IncrementComments(ctx context.Context, id string) error {
	return r.posts.mutate(ctx, func(items []entity.Post) ([]entity.Post, error) {
		i, ok := find(items, func(p entity.Post) bool { return p.ID == id })
		if !ok {
			return nil, repository.ErrNotFound
		}
		items[i].CommentsCount++
		items[i].UpdatedAt = r.posts.db.Now()
		return items, nil
	})
}

func (r *PostRepository) setLiked(ctx context.Context, id string, liked bool) (entity.LikeState, error) {
	var state entity.LikeState
	err := r.posts.mutate(ctx, func(items []entity.Post) ([]entity.Post, error) {
		i, ok := find(items, func(p entity.Post) bool { return p.ID == id })
		if !ok {
			return nil, repository.ErrNotFound
		}
		state = items[i].SetLiked(liked)
		return items, nil
	})
	if err != nil {
		return entity.LikeState{}, err
	}
	return state, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
