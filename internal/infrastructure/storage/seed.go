package storage

import (
	"context"
	"fmt"

	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

// Seed writes the fixture projection of every catalog key that has not been
// written yet and reports the item count per key. Keys already holding data
// are rewritten unchanged. Seller listings are skipped: until written they
// follow the viewer.
func (d *DB) Seed(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	steps := []struct {
		key  string
		seed func(context.Context) (int, error)
	}{
		{kvstore.KeyProfiles, materialize(newCollection(d, kvstore.KeyProfiles, fixtureProfiles))},
		{kvstore.KeyPosts, materialize(newCollection(d, kvstore.KeyPosts, fixturePosts))},
		{kvstore.KeyComments, materialize(newCollection(d, kvstore.KeyComments, fixtureComments))},
		{kvstore.KeyProducts, materialize(newCollection(d, kvstore.KeyProducts, fixtureProducts))},
	}
	for _, s := range steps {
		n, err := s.seed(ctx)
		if err != nil {
			return counts, fmt.Errorf("seed %s: %w", s.key, err)
		}
		counts[s.key] = n
	}
	return counts, nil
}

func materialize[T any](c collection[T]) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		n := 0
		err := c.mutate(ctx, func(items []T) ([]T, error) {
			n = len(items)
			return items, nil
		})
		return n, err
	}
}
