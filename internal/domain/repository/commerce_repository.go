package repository

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
)

// ProductRepository serves the marketplace catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// SellerProductRepository manages the seller's own listings.
type SellerProductRepository interface {
	List(ctx context.Context, sellerID string) ([]entity.SellerProduct, error)
	GetByID(ctx context.Context, id string) (*entity.SellerProduct, error)
	Create(ctx context.Context, p *entity.SellerProduct) error
	Update(ctx context.Context, p *entity.SellerProduct) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository stores placed orders.
type OrderRepository interface {
	List(ctx context.Context, buyerID string) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Create(ctx context.Context, o *entity.Order) error
}
