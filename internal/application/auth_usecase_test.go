package application

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/mailer"
	mailtpl "github.com/oksasatya/creator-commerce/pkg/mailer/templates"
)

func TestLogin_DelegatesOnceForValidInput(t *testing.T) {
	ctx := context.Background()
	r := new(MockAuthRepository)
	want := &entity.User{ID: "u1", Email: "ana@example.com"}
	r.On("Login", ctx, "ana@example.com", "secret").Return(want, nil).Once()

	uc := NewAuthUseCases(r, nil, nil)
	got, err := uc.Login(ctx, "ana@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	r.AssertNumberOfCalls(t, "Login", 1)
}

func TestLogin_RejectsInvalidInputWithoutCallingRepo(t *testing.T) {
	cases := []struct {
		name, email, password, field string
	}{
		{"empty email", "", "secret", "email"},
		{"empty password", "ana@example.com", "", "password"},
		{"no at sign", "ana.example.com", "secret", "email"},
		{"no tld", "ana@example", "secret", "email"},
		{"spaces", "ana @example.com", "secret", "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := new(MockAuthRepository)
			uc := NewAuthUseCases(r, nil, nil)

			_, err := uc.Login(context.Background(), tc.email, tc.password)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			r.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_NameLength(t *testing.T) {
	ctx := context.Background()

	t.Run("one character is rejected", func(t *testing.T) {
		r := new(MockAuthRepository)
		_, err := NewAuthUseCases(r, nil, nil).Register(ctx, entity.RegisterRequest{Name: "A", Email: "a@b.co"})
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "name", ve.Field)
		r.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("whitespace counts toward the length", func(t *testing.T) {
		r := new(MockAuthRepository)
		req := entity.RegisterRequest{Name: " A", Email: "a@b.co"}
		r.On("Register", ctx, req).Return(&entity.User{ID: "u1"}, nil).Once()
		_, err := NewAuthUseCases(r, nil, nil).Register(ctx, req)
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("two characters delegate once", func(t *testing.T) {
		r := new(MockAuthRepository)
		req := entity.RegisterRequest{Name: "Al", Email: "al@example.com", Password: "pw"}
		r.On("Register", ctx, req).Return(&entity.User{ID: "u2", Name: "Al"}, nil).Once()
		u, err := NewAuthUseCases(r, nil, nil).Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "u2", u.ID)
		r.AssertNumberOfCalls(t, "Register", 1)
	})
}

func TestRegister_RejectsMissingOrMalformedEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email"} {
		r := new(MockAuthRepository)
		_, err := NewAuthUseCases(r, nil, nil).Register(context.Background(), entity.RegisterRequest{Name: "Ana", Email: email})
		assert.ErrorIs(t, err, ErrValidation)
		r.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	}
}

func TestRegister_QueuesWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	r := new(MockAuthRepository)
	pub := new(MockPublisher)
	req := entity.RegisterRequest{Name: "Ana", Email: "ana@example.com"}
	r.On("Register", ctx, req).Return(&entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}, nil)
	pub.On("PublishJSON", mock.Anything, mock.MatchedBy(func(job mailer.EmailJob) bool {
		return job.To == "ana@example.com" && job.Template == mailtpl.Welcome && job.Data["Name"] == "Ana"
	})).Return(errors.New("broker down")).Once()

	uc := NewAuthUseCases(r, NewNotifier(pub, nil, nil), nil)
	u, err := uc.Register(ctx, req)

	require.NoError(t, err, "publish failures must not fail registration")
	assert.Equal(t, "u1", u.ID)
	pub.AssertExpectations(t)
}

func TestLogoutAndCurrentUserDelegate(t *testing.T) {
	ctx := context.Background()
	r := new(MockAuthRepository)
	r.On("Logout", ctx).Return(nil).Once()
	r.On("CurrentUser", ctx).Return(nil, nil).Once()

	uc := NewAuthUseCases(r, nil, nil)
	require.NoError(t, uc.Logout(ctx))
	u, err := uc.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
	r.AssertExpectations(t)
}

func TestValidationFailuresAreCounted(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	uc := NewAuthUseCases(new(MockAuthRepository), nil, m)

	_, _ = uc.Login(context.Background(), "", "")
	_, _ = uc.Login(context.Background(), "x", "y")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("auth.login")))
}
