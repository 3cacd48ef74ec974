package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

// AuthRepository keeps bcrypt credentials and the single installation session.
type AuthRepository struct {
	db          *DB
	users       repository.UserRepository
	credentials collection[entity.Credential]
}

func NewAuthRepository(db *DB, users repository.UserRepository) *AuthRepository {
	return &AuthRepository{
		db:          db,
		users:       users,
		credentials: newCollection[entity.Credential](db, kvstore.KeyCredentials, nil),
	}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*entity.User, error) {
	creds := r.credentials.all(ctx)
	i, ok := find(creds, func(c entity.Credential) bool { return strings.EqualFold(c.Email, email) })
	if !ok || !helpers.CompareHashAndPassword(creds[i].PasswordHash, password) {
		return nil, repository.ErrInvalidCredentials
	}
	u, err := r.users.GetByID(ctx, creds[i].UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, repository.ErrInvalidCredentials
	}
	u.IsOnline = true
	if err := r.users.Update(ctx, u); err != nil {
		return nil, err
	}
	if err := r.startSession(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *AuthRepository) Register(ctx context.Context, req entity.RegisterRequest) (*entity.User, error) {
	existing, err := r.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrEmailTaken
	}
	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// The credential is written first and removed again if the user write fails.
	u := &entity.User{ID: r.db.NewID(), Name: req.Name, Email: req.Email, Username: req.Username, IsOnline: true}
	err = r.credentials.mutate(ctx, func(items []entity.Credential) ([]entity.Credential, error) {
		return append(items, entity.Credential{UserID: u.ID, Email: u.Email, PasswordHash: hash}), nil
	})
	if err != nil {
		return nil, err
	}
	if err := r.users.Create(ctx, u); err != nil {
		r.dropCredential(ctx, u.ID)
		return nil, err
	}
	if err := r.startSession(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout ends the session of the request viewer. A request carrying a
// different viewer leaves the installation session alone.
func (r *AuthRepository) Logout(ctx context.Context) error {
	unlock := r.db.lock(kvstore.KeySession)
	defer unlock()

	s := kvstore.GetJSON(ctx, r.db.Store, kvstore.KeySession, entity.Session{})
	userID := s.UserID
	if viewer, ok := entity.ViewerFromContext(ctx); ok {
		userID = viewer
	}
	if userID == "" || userID == entity.GuestID {
		return nil
	}
	if u, err := r.users.GetByID(ctx, userID); err == nil && u != nil {
		u.IsOnline = false
		if err := r.users.Update(ctx, u); err != nil {
			r.db.Logger.WithError(err).WithField("user_id", u.ID).Warn("mark offline failed")
		}
	}
	if s.UserID != userID {
		return nil
	}
	return r.db.Store.Delete(ctx, kvstore.KeySession)
}

// CurrentUser returns nil when nobody is signed in. A request viewer takes
// precedence over the installation session.
func (r *AuthRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	userID := kvstore.GetJSON(ctx, r.db.Store, kvstore.KeySession, entity.Session{}).UserID
	if viewer, ok := entity.ViewerFromContext(ctx); ok {
		userID = viewer
	}
	if userID == "" || userID == entity.GuestID {
		return nil, nil
	}
	return r.users.GetByID(ctx, userID)
}

func (r *AuthRepository) dropCredential(ctx context.Context, userID string) {
	err := r.credentials.mutate(ctx, func(items []entity.Credential) ([]entity.Credential, error) {
		out := items[:0]
		for _, c := range items {
			if c.UserID != userID {
				out = append(out, c)
			}
		}
		return out, nil
	})
	if err != nil {
		r.db.Logger.WithError(err).WithField("user_id", userID).Error("credential rollback failed")
	}
}

func (r *AuthRepository) startSession(ctx context.Context, userID string) error {
	unlock := r.db.lock(kvstore.KeySession)
	defer unlock()
	return kvstore.SetJSON(ctx, r.db.Store, kvstore.KeySession, entity.Session{UserID: userID, LoggedInAt: r.db.Now()})
}

var _ repository.AuthRepository = (*AuthRepository)(nil)
