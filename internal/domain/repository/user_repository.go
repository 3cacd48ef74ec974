package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
}

// AuthRepository owns credentials and the installation session.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.User, error)
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entity.User, error)
}
