package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

// ProfileSearcher is a full-text index over creator profiles.
type ProfileSearcher interface {
	SearchProfiles(ctx context.Context, q string, size int) ([]string, error)
	IndexProfile(ctx context.Context, p entity.CreatorProfile) error
}

type ProfileUseCases struct {
	Repo     repo.ProfileRepository
	Searcher ProfileSearcher
	Logger   *logrus.Logger
	Metrics  *Metrics
}

func NewProfileUseCases(r repo.ProfileRepository, s ProfileSearcher, logger *logrus.Logger, m *Metrics) *ProfileUseCases {
	return &ProfileUseCases{Repo: r, Searcher: s, Logger: logger, Metrics: m}
}

func (uc *ProfileUseCases) List(ctx context.Context) ([]entity.CreatorProfile, error) {
	return uc.Repo.List(ctx)
}

func (uc *ProfileUseCases) GetByID(ctx context.Context, id string) (*entity.CreatorProfile, error) {
	return uc.Repo.GetByID(ctx, id)
}

// Follow returns the followers count after the change.
func (uc *ProfileUseCases) Follow(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, uc.Metrics.rejected("profiles.follow", invalid("id", "profile id is required"))
	}
	n, err := uc.Repo.Follow(ctx, id)
	if err != nil {
		return 0, err
	}
	uc.Metrics.follow("follow")
	uc.reindex(ctx, id)
	return n, nil
}

// Unfollow returns the followers count after the change; it never drops below zero.
func (uc *ProfileUseCases) Unfollow(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, uc.Metrics.rejected("profiles.unfollow", invalid("id", "profile id is required"))
	}
	n, err := uc.Repo.Unfollow(ctx, id)
	if err != nil {
		return 0, err
	}
	uc.Metrics.follow("unfollow")
	uc.reindex(ctx, id)
	return n, nil
}

// Search uses the index when one is configured and falls back to a
// case-insensitive scan of name, handle and category.
func (uc *ProfileUseCases) Search(ctx context.Context, q string, size int) ([]entity.CreatorProfile, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, uc.Metrics.rejected("profiles.search", invalid("q", "query is required"))
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if uc.Searcher != nil {
		ids, err := uc.Searcher.SearchProfiles(ctx, q, size)
		if err == nil {
			return pickProfiles(all, ids), nil
		}
		if uc.Logger != nil {
			uc.Logger.WithError(err).WithField("q", q).Warn("profile search failed, scanning store")
		}
	}
	return scanProfiles(all, q, size), nil
}

func (uc *ProfileUseCases) reindex(ctx context.Context, id string) {
	if uc.Searcher == nil {
		return
	}
	p, err := uc.Repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return
	}
	if err := uc.Searcher.IndexProfile(ctx, *p); err != nil && uc.Logger != nil {
		uc.Logger.WithError(err).WithField("profile_id", id).Warn("es index failed")
	}
}

// pickProfiles keeps the index order and drops ids the store no longer has.
func pickProfiles(all []entity.CreatorProfile, ids []string) []entity.CreatorProfile {
	byID := make(map[string]entity.CreatorProfile, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	out := make([]entity.CreatorProfile, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func scanProfiles(all []entity.CreatorProfile, q string, size int) []entity.CreatorProfile {
	q = strings.ToLower(q)
	out := make([]entity.CreatorProfile, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Handle), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
			if len(out) == size {
				break
			}
		}
	}
	return out
}
