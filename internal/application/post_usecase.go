package application

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

type PostUseCases struct {
	Repo    repo.PostRepository
	Metrics *Metrics
}

func NewPostUseCases(r repo.PostRepository, m *Metrics) *PostUseCases {
	return &PostUseCases{Repo: r, Metrics: m}
}

func (uc *PostUseCases) List(ctx context.Context) ([]entity.Post, error) {
	return uc.Repo.List(ctx)
}

func (uc *PostUseCases) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return uc.Repo.GetByID(ctx, id)
}

// ToggleLike trusts the caller's last known state: liked posts get unliked
// and everything else gets liked.
func (uc *PostUseCases) ToggleLike(ctx context.Context, id string, currentlyLiked bool) (entity.LikeState, error) {
	var (
		state entity.LikeState
		err   error
	)
	if currentlyLiked {
		state, err = uc.Repo.Unlike(ctx, id)
	} else {
		state, err = uc.Repo.Like(ctx, id)
	}
	if err != nil {
		return entity.LikeState{}, err
	}
	uc.Metrics.liked(state.Liked)
	return state, nil
}

// FlipLike lets the repository decide from its stored state.
func (uc *PostUseCases) FlipLike(ctx context.Context, id string) (entity.LikeState, error) {
	if id == "" {
		return entity.LikeState{}, uc.Metrics.rejected("posts.flip_like", invalid("id", "post id is required"))
	}
	state, err := uc.Repo.ToggleLike(ctx, id)
	if err != nil {
		return entity.LikeState{}, err
	}
	uc.Metrics.liked(state.Liked)
	return state, nil
}
