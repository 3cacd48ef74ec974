package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
)

func TestCreateListing_NormalizesCurrencyAndDefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	r := new(MockSellerProductRepository)
	r.On("Create", ctx, mock.MatchedBy(func(p *entity.SellerProduct) bool {
		return p.SellerID == "seller-1" && p.Currency == "USD" && p.Status == entity.ListingDraft && p.Name == "Vase"
	})).Return(nil).Once()

	l, err := NewSellerUseCases(r, fixedViewer("seller-1"), nil).CreateListing(ctx, ListingInput{Name: " Vase ", PriceCents: 4500, Currency: "usd", Stock: 3})

	require.NoError(t, err)
	assert.Equal(t, "$45.00", l.DisplayPrice)
	r.AssertExpectations(t)
}

func TestCreateListing_Validation(t *testing.T) {
	cases := map[string]ListingInput{
		"name":       {Name: "  ", Currency: "USD"},
		"priceCents": {Name: "Vase", PriceCents: -1, Currency: "USD"},
		"stock":      {Name: "Vase", Stock: -2, Currency: "USD"},
		"status":     {Name: "Vase", Currency: "USD", Status: "sold"},
		"currency":   {Name: "Vase", Currency: "dollars"},
	}
	for field, in := range cases {
		r := new(MockSellerProductRepository)
		_, err := NewSellerUseCases(r, fixedViewer("seller-1"), nil).CreateListing(context.Background(), in)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), field)
		assert.Equal(t, field, ve.Field)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestUpdateAndDeleteListing_RequireOwnership(t *testing.T) {
	ctx := context.Background()
	r := new(MockSellerProductRepository)
	r.On("GetByID", ctx, "listing-1").Return(&entity.SellerProduct{ID: "listing-1", SellerID: "seller-1"}, nil)
	r.On("GetByID", ctx, "listing-x").Return(&entity.SellerProduct{ID: "listing-x", SellerID: "seller-2"}, nil)
	r.On("Update", ctx, mock.AnythingOfType("*entity.SellerProduct")).Return(nil).Once()
	r.On("Delete", ctx, "listing-1").Return(nil).Once()
	uc := NewSellerUseCases(r, fixedViewer("seller-1"), nil)

	l, err := uc.UpdateListing(ctx, "listing-1", ListingInput{Name: "Bowl", PriceCents: 100, Currency: "EUR", Status: entity.ListingActive})
	require.NoError(t, err)
	assert.Equal(t, "EUR", l.Currency)
	assert.Equal(t, entity.ListingActive, l.Status)

	_, err = uc.UpdateListing(ctx, "listing-x", ListingInput{Name: "Bowl", Currency: "EUR"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, uc.DeleteListing(ctx, "listing-1"))
	assert.ErrorIs(t, uc.DeleteListing(ctx, "listing-x"), repository.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteListing(ctx, ""), ErrValidation)
	r.AssertNumberOfCalls(t, "Delete", 1)
}
