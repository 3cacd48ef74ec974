package application

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

type OnboardingUseCases struct {
	Repo    repo.OnboardingRepository
	Viewer  ViewerResolver
	Metrics *Metrics
}

func NewOnboardingUseCases(r repo.OnboardingRepository, v ViewerResolver, m *Metrics) *OnboardingUseCases {
	return &OnboardingUseCases{Repo: r, Viewer: v, Metrics: m}
}

func (uc *OnboardingUseCases) Options(ctx context.Context) (entity.OnboardingOptions, error) {
	return uc.Repo.Options(ctx)
}

// SaveSelection requires at least one known interest; goal is optional but must be known when set.
func (uc *OnboardingUseCases) SaveSelection(ctx context.Context, interests []string, goal string) (*entity.OnboardingSelection, error) {
	if len(interests) == 0 {
		return nil, uc.Metrics.rejected("onboarding.save", invalid("interests", "pick at least one interest"))
	}
	opts, err := uc.Repo.Options(ctx)
	if err != nil {
		return nil, err
	}
	known := optionIDs(opts.Interests)
	seen := make(map[string]bool, len(interests))
	picked := make([]string, 0, len(interests))
	for _, id := range interests {
		if !known[id] {
			return nil, uc.Metrics.rejected("onboarding.save", invalid("interests", "unknown interest "+id))
		}
		if !seen[id] {
			seen[id] = true
			picked = append(picked, id)
		}
	}
	if goal != "" && !optionIDs(opts.Goals)[goal] {
		return nil, uc.Metrics.rejected("onboarding.save", invalid("goal", "unknown goal "+goal))
	}

	sel := entity.OnboardingSelection{Interests: picked, Goal: goal}
	if uc.Viewer != nil {
		sel.UserID = uc.Viewer.ViewerID(ctx)
	}
	if err := uc.Repo.SaveSelection(ctx, sel); err != nil {
		return nil, err
	}
	return uc.Repo.Selection(ctx, sel.UserID)
}

func optionIDs(opts []entity.OnboardingOption) map[string]bool {
	m := make(map[string]bool, len(opts))
	for _, o := range opts {
		m[o.ID] = true
	}
	return m
}

type SettingsUseCases struct {
	Repo repo.OnboardingRepository
}

func NewSettingsUseCases(r repo.OnboardingRepository) *SettingsUseCases {
	return &SettingsUseCases{Repo: r}
}

func (uc *SettingsUseCases) Sections(ctx context.Context) ([]entity.SettingsSection, error) {
	return uc.Repo.Settings(ctx)
}
