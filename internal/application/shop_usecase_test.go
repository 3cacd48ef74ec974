package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/mailer"
)

func TestPlaceOrder_SnapshotsProducts(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	products.On("GetByID", ctx, "prod-1").Return(&entity.Product{ID: "prod-1", Name: "Bowl", PriceCents: 4500, Currency: "USD"}, nil)
	products.On("GetByID", ctx, "prod-2").Return(&entity.Product{ID: "prod-2", Name: "Mug", PriceCents: 2800, Currency: "USD"}, nil)
	orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	uc := NewShopUseCases(products, orders, nil, fixedViewer("buyer-1"), nil, nil)
	o, err := uc.PlaceOrder(ctx, PlaceOrderRequest{Items: []OrderLine{{ProductID: "prod-1", Quantity: 2}, {ProductID: "prod-2", Quantity: 1}}})

	require.NoError(t, err)
	assert.Equal(t, "buyer-1", o.BuyerID)
	assert.Equal(t, entity.OrderPlaced, o.Status)
	assert.Equal(t, "USD", o.Currency)
	assert.Equal(t, int64(11800), o.TotalCents)
	require.Len(t, o.Items, 2)
	assert.Equal(t, entity.OrderItem{ProductID: "prod-1", Name: "Bowl", Quantity: 2, PriceCents: 4500}, o.Items[0])
	orders.AssertExpectations(t)
}

func TestPlaceOrder_RejectsBadLines(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	products.On("GetByID", ctx, "missing").Return(nil, nil)
	products.On("GetByID", ctx, "usd").Return(&entity.Product{ID: "usd", Currency: "USD"}, nil)
	products.On("GetByID", ctx, "eur").Return(&entity.Product{ID: "eur", Currency: "EUR"}, nil)
	orders := new(MockOrderRepository)
	uc := NewShopUseCases(products, orders, nil, fixedViewer("b"), nil, nil)

	_, err := uc.PlaceOrder(ctx, PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.PlaceOrder(ctx, PlaceOrderRequest{Items: []OrderLine{{ProductID: "usd", Quantity: 0}}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.PlaceOrder(ctx, PlaceOrderRequest{Items: []OrderLine{{ProductID: "missing", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.PlaceOrder(ctx, PlaceOrderRequest{Items: []OrderLine{{ProductID: "usd", Quantity: 1}, {ProductID: "eur", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrMixedCurrencies)

	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_NotifiesKnownBuyer(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	users := new(MockUserRepository)
	pub := new(MockPublisher)
	products.On("GetByID", ctx, "prod-1").Return(&entity.Product{ID: "prod-1", Name: "Bowl", PriceCents: 4500, Currency: "USD"}, nil)
	orders.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).ID = "ord-1"
	}).Return(nil)
	users.On("GetByID", ctx, "buyer-1").Return(&entity.User{ID: "buyer-1", Name: "Ana", Email: "ana@example.com"}, nil)
	pub.On("PublishJSON", mock.Anything, mock.MatchedBy(func(job mailer.EmailJob) bool {
		return job.To == "ana@example.com" && job.Data["OrderID"] == "ord-1" && job.Data["OrderTotal"] == "$45.00"
	})).Return(nil).Once()

	uc := NewShopUseCases(products, orders, users, fixedViewer("buyer-1"), NewNotifier(pub, nil, nil), nil)
	_, err := uc.PlaceOrder(ctx, PlaceOrderRequest{Items: []OrderLine{{ProductID: "prod-1", Quantity: 1}}})

	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestGetOrder_HidesOtherBuyers(t *testing.T) {
	ctx := context.Background()
	orders := new(MockOrderRepository)
	orders.On("GetByID", ctx, "ord-1").Return(&entity.Order{ID: "ord-1", BuyerID: "someone-else"}, nil)
	orders.On("GetByID", ctx, "ord-2").Return(&entity.Order{ID: "ord-2", BuyerID: "buyer-1"}, nil)
	uc := NewShopUseCases(nil, orders, nil, fixedViewer("buyer-1"), nil, nil)

	o, err := uc.GetOrder(ctx, "ord-1")
	require.NoError(t, err)
	assert.Nil(t, o)

	o, err = uc.GetOrder(ctx, "ord-2")
	require.NoError(t, err)
	assert.Equal(t, "ord-2", o.ID)

	_, err = uc.GetOrder(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)
}
