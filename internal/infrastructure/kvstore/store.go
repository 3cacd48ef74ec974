// Package kvstore is the device-local persistence used by every repository.
// Values are JSON documents stored whole under fixed string keys.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Fixed keys, one JSON array (or document) per entity type.
const (
	KeyProfiles       = "profiles"
	KeyPosts          = "posts"
	KeyComments       = "comments"
	KeyMessages       = "messages"
	KeyUsers          = "users"
	KeyCredentials    = "credentials"
	KeySession        = "session"
	KeyProducts       = "products"
	KeySellerProducts = "seller_products"
	KeyOrders         = "orders"
	KeyOnboarding     = "onboarding"
)

// Backend is a raw byte store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store adds JSON encoding and failure logging on top of a Backend.
type Store struct {
	backend Backend
	logger  *logrus.Logger
}

func New(backend Backend, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{backend: backend, logger: logger}
}

// NewMemoryStore returns a Store over a fresh in-process backend.
func NewMemoryStore(logger *logrus.Logger) *Store {
	return New(NewMemory(), logger)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("kvstore delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return s.backend.Close() }

// Ping reads a fixed key to check the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if _, _, err := s.backend.Get(ctx, KeySession); err != nil {
		return fmt.Errorf("kvstore ping: %w", err)
	}
	return nil
}

// GetJSON returns the value stored under key, or def when the key is absent,
// the backend fails, or the document does not decode. It never fails.
func GetJSON[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("kvstore read failed, using default")
		return def
	}
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("kvstore decode failed, using default")
		return def
	}
	return out
}

// SetJSON replaces the value stored under key.
func SetJSON[T any](ctx context.Context, s *Store, key string, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore encode %q: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, b); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("kvstore write failed")
		return fmt.Errorf("kvstore write %q: %w", key, err)
	}
	return nil
}
