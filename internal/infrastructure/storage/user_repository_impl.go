package storage

import (
	"context"
	"strings"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type UserRepository struct {
	users collection[entity.User]
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{users: newCollection[entity.User](db, kvstore.KeyUsers, nil)}
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	return r.users.all(ctx), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, func(u entity.User) bool { return u.ID == id }), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, func(u entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	db := r.users.db
	if u.ID == "" {
		u.ID = db.NewID()
	}
	now := db.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	return r.users.mutate(ctx, func(items []entity.User) ([]entity.User, error) {
		if _, dup := find(items, func(x entity.User) bool { return strings.EqualFold(x.Email, u.Email) }); dup {
			return nil, repository.ErrEmailTaken
		}
		return append(items, *u), nil
	})
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = r.users.db.Now()
	return r.users.mutate(ctx, func(items []entity.User) ([]entity.User, error) {
		i, ok := find(items, func(x entity.User) bool { return x.ID == u.ID })
		if !ok {
			return nil, repository.ErrNotFound
		}
		items[i] = *u
		return items, nil
	})
}

func (r *UserRepository) findOne(ctx context.Context, match func(entity.User) bool) *entity.User {
	items := r.users.all(ctx)
	i, ok := find(items, match)
	if !ok {
		return nil
	}
	u := items[i]
	return &u
}

var _ repository.UserRepository = (*UserRepository)(nil)
