package application

import (
	"context"
	"regexp"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool { return emailPattern.MatchString(email) }

type AuthUseCases struct {
	Repo     repo.AuthRepository
	Notifier *Notifier
	Metrics  *Metrics
}

func NewAuthUseCases(r repo.AuthRepository, n *Notifier, m *Metrics) *AuthUseCases {
	return &AuthUseCases{Repo: r, Notifier: n, Metrics: m}
}

func (uc *AuthUseCases) Login(ctx context.Context, email, password string) (*entity.User, error) {
	switch {
	case email == "":
		return nil, uc.Metrics.rejected("auth.login", invalid("email", "email is required"))
	case password == "":
		return nil, uc.Metrics.rejected("auth.login", invalid("password", "password is required"))
	case !validEmail(email):
		return nil, uc.Metrics.rejected("auth.login", invalid("email", "email is invalid"))
	}
	return uc.Repo.Login(ctx, email, password)
}

// Register checks the name length on the raw input; no trimming happens.
func (uc *AuthUseCases) Register(ctx context.Context, req entity.RegisterRequest) (*entity.User, error) {
	switch {
	case req.Name == "":
		return nil, uc.Metrics.rejected("auth.register", invalid("name", "name is required"))
	case req.Email == "":
		return nil, uc.Metrics.rejected("auth.register", invalid("email", "email is required"))
	case !validEmail(req.Email):
		return nil, uc.Metrics.rejected("auth.register", invalid("email", "email is invalid"))
	case len([]rune(req.Name)) < 2:
		return nil, uc.Metrics.rejected("auth.register", invalid("name", "name must be at least 2 characters"))
	}
	u, err := uc.Repo.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.Notifier.Welcome(ctx, u)
	return u, nil
}

func (uc *AuthUseCases) Logout(ctx context.Context) error {
	return uc.Repo.Logout(ctx)
}

func (uc *AuthUseCases) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	return uc.Repo.CurrentUser(ctx)
}
