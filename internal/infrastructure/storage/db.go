// Package storage implements the domain repositories on top of the
// key-value store, falling back to fixture data until a key is written.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

// DB is shared by every repository of one installation. It serializes
// read-modify-write cycles per key.
type DB struct {
	Store  *kvstore.Store
	Logger *logrus.Logger
	Now    func() time.Time
	NewID  func() string

	locks sync.Map
}

func NewDB(store *kvstore.Store, logger *logrus.Logger) *DB {
	if logger == nil {
		logger = logrus.New()
	}
	return &DB{
		Store:  store,
		Logger: logger,
		Now:    func() time.Time { return time.Now().UTC() },
		NewID:  uuid.NewString,
	}
}

func (d *DB) lock(key string) func() {
	m, _ := d.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ViewerID exposes viewer resolution to the use cases.
func (d *DB) ViewerID(ctx context.Context) string { return d.viewerID(ctx) }

// viewerID resolves who is acting: the request viewer, then the session, then the guest.
func (d *DB) viewerID(ctx context.Context) string {
	if id, ok := entity.ViewerFromContext(ctx); ok {
		return id
	}
	if s := kvstore.GetJSON(ctx, d.Store, kvstore.KeySession, entity.Session{}); s.UserID != "" {
		return s.UserID
	}
	return entity.GuestID
}

// collection is one JSON array under a fixed key with a fixture fallback.
type collection[T any] struct {
	db       *DB
	key      string
	fixtures func() []T
	// owned collections treat a stored empty list as written, so deleting
	// the last item does not bring the fixtures back.
	owned bool
}

func newCollection[T any](db *DB, key string, fixtures func() []T) collection[T] {
	if fixtures == nil {
		fixtures = func() []T { return nil }
	}
	return collection[T]{db: db, key: key, fixtures: fixtures}
}

func (c collection[T]) stored(ctx context.Context) []T {
	return kvstore.GetJSON[[]T](ctx, c.db.Store, c.key, nil)
}

// all is side-effect free: the fixture projection is never written back here.
func (c collection[T]) all(ctx context.Context) []T {
	if c.owned {
		if items := kvstore.GetJSON[*[]T](ctx, c.db.Store, c.key, nil); items != nil {
			return *items
		}
		return c.fixtures()
	}
	return repository.Resolve(c.stored(ctx), c.fixtures())
}

// mutate runs fn on the effective list and persists the result. The first
// write of a key materializes the fixture projection.
func (c collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	unlock := c.db.lock(c.key)
	defer unlock()

	items, err := fn(c.all(ctx))
	if err != nil {
		return err
	}
	if items == nil && c.owned {
		items = []T{}
	}
	return kvstore.SetJSON(ctx, c.db.Store, c.key, items)
}

func find[T any](items []T, match func(T) bool) (int, bool) {
	for i := range items {
		if match(items[i]) {
			return i, true
		}
	}
	return -1, false
}
