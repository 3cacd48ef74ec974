package storage

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type ProfileRepository struct {
	profiles collection[entity.CreatorProfile]
}

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{profiles: newCollection(db, kvstore.KeyProfiles, fixtureProfiles)}
}

func (r *ProfileRepository) List(ctx context.Context) ([]entity.CreatorProfile, error) {
	return r.profiles.all(ctx), nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.CreatorProfile, error) {
	items := r.profiles.all(ctx)
	i, ok := find(items, func(p entity.CreatorProfile) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	p := items[i]
	return &p, nil
}

func (r *ProfileRepository) Follow(ctx context.Context, id string) (int, error) {
	return r.adjust(ctx, id, 1)
}

// Unfollow never drives the counter below zero.
func (r *ProfileRepository) Unfollow(ctx context.Context, id string) (int, error) {
	return r.adjust(ctx, id, -1)
}

func (r *ProfileRepository) adjust(ctx context.Context, id string, delta int) (int, error) {
	var count int
	err := r.profiles.mutate(ctx, func(items []entity.CreatorProfile) ([]entity.CreatorProfile, error) {
		i, ok := find(items, func(p entity.CreatorProfile) bool { return p.ID == id })
		if !ok {
			return nil, repository.ErrNotFound
		}
		count = items[i].AdjustFollowers(delta)
		return items, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
