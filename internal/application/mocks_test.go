package application

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
)

type MockAuthRepository struct{ mock.Mock }

func (m *MockAuthRepository) Login(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockAuthRepository) Register(ctx context.Context, req entity.RegisterRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockAuthRepository) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) ListConversations(ctx context.Context) ([]entity.Conversation, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]entity.Conversation)
	return c, args.Error(1)
}

func (m *MockMessageRepository) ListMessages(ctx context.Context, counterpartID string) ([]entity.Message, error) {
	args := m.Called(ctx, counterpartID)
	msgs, _ := args.Get(0).([]entity.Message)
	return msgs, args.Error(1)
}

func (m *MockMessageRepository) Send(ctx context.Context, req entity.SendMessageRequest) (entity.Message, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkAsRead(ctx context.Context, messageID string) error {
	return m.Called(ctx, messageID).Error(0)
}

type MockPostRepository struct{ mock.Mock }

func (m *MockPostRepository) List(ctx context.Context) ([]entity.Post, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]entity.Post)
	return p, args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Post)
	return p, args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, id string) (entity.LikeState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.LikeState), args.Error(1)
}

func (m *MockPostRepository) Unlike(ctx context.Context, id string) (entity.LikeState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.LikeState), args.Error(1)
}

func (m *MockPostRepository) IsLiked(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ToggleLike(ctx context.Context, id string) (entity.LikeState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.LikeState), args.Error(1)
}

func (m *MockPostRepository) IncrementComments(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	args := m.Called(ctx, postID)
	c, _ := args.Get(0).([]entity.Comment)
	return c, args.Error(1)
}

func (m *MockCommentRepository) Add(ctx context.Context, postID string, in entity.NewComment) (entity.Comment, error) {
	args := m.Called(ctx, postID, in)
	return args.Get(0).(entity.Comment), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) List(ctx context.Context) ([]entity.CreatorProfile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]entity.CreatorProfile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*entity.CreatorProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.CreatorProfile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) Follow(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileRepository) Unfollow(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]entity.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) List(ctx context.Context, buyerID string) ([]entity.Order, error) {
	args := m.Called(ctx, buyerID)
	o, _ := args.Get(0).([]entity.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockSellerProductRepository struct{ mock.Mock }

func (m *MockSellerProductRepository) List(ctx context.Context, sellerID string) ([]entity.SellerProduct, error) {
	args := m.Called(ctx, sellerID)
	p, _ := args.Get(0).([]entity.SellerProduct)
	return p, args.Error(1)
}

func (m *MockSellerProductRepository) GetByID(ctx context.Context, id string) (*entity.SellerProduct, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.SellerProduct)
	return p, args.Error(1)
}

func (m *MockSellerProductRepository) Create(ctx context.Context, p *entity.SellerProduct) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSellerProductRepository) Update(ctx context.Context, p *entity.SellerProduct) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSellerProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockOnboardingRepository struct{ mock.Mock }

func (m *MockOnboardingRepository) Options(ctx context.Context) (entity.OnboardingOptions, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.OnboardingOptions), args.Error(1)
}

func (m *MockOnboardingRepository) Selection(ctx context.Context, userID string) (*entity.OnboardingSelection, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*entity.OnboardingSelection)
	return s, args.Error(1)
}

func (m *MockOnboardingRepository) SaveSelection(ctx context.Context, sel entity.OnboardingSelection) error {
	return m.Called(ctx, sel).Error(0)
}

func (m *MockOnboardingRepository) Settings(ctx context.Context) ([]entity.SettingsSection, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]entity.SettingsSection)
	return s, args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishJSON(ctx context.Context, body any) error {
	return m.Called(ctx, body).Error(0)
}

type MockSearcher struct{ mock.Mock }

func (m *MockSearcher) SearchProfiles(ctx context.Context, q string, size int) ([]string, error) {
	args := m.Called(ctx, q, size)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockSearcher) IndexProfile(ctx context.Context, p entity.CreatorProfile) error {
	return m.Called(ctx, p).Error(0)
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, objectPath, contentType, r)
	return args.String(0), args.Error(1)
}

type fixedViewer string

func (v fixedViewer) ViewerID(context.Context) string { return string(v) }
