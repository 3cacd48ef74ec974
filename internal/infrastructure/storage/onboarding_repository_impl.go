package storage

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/fixture"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type OnboardingRepository struct {
	selections collection[entity.OnboardingSelection]
}

func NewOnboardingRepository(db *DB) *OnboardingRepository {
	return &OnboardingRepository{selections: newCollection[entity.OnboardingSelection](db, kvstore.KeyOnboarding, nil)}
}

func (r *OnboardingRepository) Options(_ context.Context) (entity.OnboardingOptions, error) {
	return fixture.OnboardingOptions(), nil
}

func (r *OnboardingRepository) Settings(_ context.Context) ([]entity.SettingsSection, error) {
	return fixture.Settings(), nil
}

func (r *OnboardingRepository) Selection(ctx context.Context, userID string) (*entity.OnboardingSelection, error) {
	items := r.selections.all(ctx)
	i, ok := find(items, func(s entity.OnboardingSelection) bool { return s.UserID == userID })
	if !ok {
		return nil, nil
	}
	s := items[i]
	return &s, nil
}

// SaveSelection replaces any earlier selection of the same user.
func (r *OnboardingRepository) SaveSelection(ctx context.Context, sel entity.OnboardingSelection) error {
	if sel.UserID == "" {
		sel.UserID = r.selections.db.viewerID(ctx)
	}
	sel.CompletedAt = r.selections.db.Now()
	return r.selections.mutate(ctx, func(items []entity.OnboardingSelection) ([]entity.OnboardingSelection, error) {
		if i, ok := find(items, func(s entity.OnboardingSelection) bool { return s.UserID == sel.UserID }); ok {
			items[i] = sel
			return items, nil
		}
		return append(items, sel), nil
	})
}

var _ repository.OnboardingRepository = (*OnboardingRepository)(nil)
