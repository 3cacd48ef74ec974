package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
)

func TestToggleLike_DispatchesOnCallerState(t *testing.T) {
	ctx := context.Background()

	t.Run("currently liked calls unlike", func(t *testing.T) {
		r := new(MockPostRepository)
		r.On("Unlike", ctx, "post-1").Return(entity.LikeState{PostID: "post-1", Liked: false, LikesCount: 4}, nil).Once()

		state, err := NewPostUseCases(r, nil).ToggleLike(ctx, "post-1", true)

		require.NoError(t, err)
		assert.False(t, state.Liked)
		assert.Equal(t, 4, state.LikesCount)
		r.AssertNumberOfCalls(t, "Unlike", 1)
		r.AssertNotCalled(t, "Like", mock.Anything, mock.Anything)
	})

	t.Run("not liked calls like", func(t *testing.T) {
		r := new(MockPostRepository)
		r.On("Like", ctx, "post-1").Return(entity.LikeState{PostID: "post-1", Liked: true, LikesCount: 5}, nil).Once()

		state, err := NewPostUseCases(r, nil).ToggleLike(ctx, "post-1", false)

		require.NoError(t, err)
		assert.True(t, state.Liked)
		r.AssertNumberOfCalls(t, "Like", 1)
		r.AssertNotCalled(t, "Unlike", mock.Anything, mock.Anything)
	})
}

func TestFlipLike_UsesRepositoryState(t *testing.T) {
	ctx := context.Background()
	r := new(MockPostRepository)
	r.On("ToggleLike", ctx, "post-2").Return(entity.LikeState{PostID: "post-2", Liked: true, LikesCount: 9}, nil).Once()
	r.On("ToggleLike", ctx, "nope").Return(entity.LikeState{}, repository.ErrNotFound).Once()

	uc := NewPostUseCases(r, nil)
	state, err := uc.FlipLike(ctx, "post-2")
	require.NoError(t, err)
	assert.Equal(t, 9, state.LikesCount)

	_, err = uc.FlipLike(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = uc.FlipLike(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)
	r.AssertNumberOfCalls(t, "ToggleLike", 2)
}
