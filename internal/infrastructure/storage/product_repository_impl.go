package storage

import (
	"context"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type ProductRepository struct {
	products collection[entity.Product]
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{products: newCollection(db, kvstore.KeyProducts, fixtureProducts)}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.products.all(ctx), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	items := r.products.all(ctx)
	i, ok := find(items, func(p entity.Product) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	p := items[i]
	return &p, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// SellerProductRepository stores listings of every seller under one key.
// Until the key is written, the demo listings are attributed to the viewer.
// An empty stored list stays empty.
type SellerProductRepository struct {
	db *DB
}

func NewSellerProductRepository(db *DB) *SellerProductRepository {
	return &SellerProductRepository{db: db}
}

func (r *SellerProductRepository) collection(ctx context.Context) collection[entity.SellerProduct] {
	viewer := r.db.viewerID(ctx)
	c := newCollection(r.db, kvstore.KeySellerProducts, func() []entity.SellerProduct {
		return fixtureSellerProducts(viewer)
	})
	c.owned = true
	return c
}

func (r *SellerProductRepository) List(ctx context.Context, sellerID string) ([]entity.SellerProduct, error) {
	all := r.collection(ctx).all(ctx)
	out := make([]entity.SellerProduct, 0, len(all))
	for _, p := range all {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *SellerProductRepository) GetByID(ctx context.Context, id string) (*entity.SellerProduct, error) {
	items := r.collection(ctx).all(ctx)
	i, ok := find(items, func(p entity.SellerProduct) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	p := items[i]
	return &p, nil
}

func (r *SellerProductRepository) Create(ctx context.Context, p *entity.SellerProduct) error {
	if p.ID == "" {
		p.ID = r.db.NewID()
	}
	now := r.db.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	return r.collection(ctx).mutate(ctx, func(items []entity.SellerProduct) ([]entity.SellerProduct, error) {
		return append(items, *p), nil
	})
}

func (r *SellerProductRepository) Update(ctx context.Context, p *entity.SellerProduct) error {
	p.UpdatedAt = r.db.Now()
	return r.collection(ctx).mutate(ctx, func(items []entity.SellerProduct) ([]entity.SellerProduct, error) {
		i, ok := find(items, func(x entity.SellerProduct) bool { return x.ID == p.ID })
		if !ok {
			return nil, repository.ErrNotFound
		}
		p.CreatedAt = items[i].CreatedAt
		items[i] = *p
		return items, nil
	})
}

func (r *SellerProductRepository) Delete(ctx context.Context, id string) error {
	return r.collection(ctx).mutate(ctx, func(items []entity.SellerProduct) ([]entity.SellerProduct, error) {
		i, ok := find(items, func(x entity.SellerProduct) bool { return x.ID == id })
		if !ok {
			return nil, repository.ErrNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

var _ repository.SellerProductRepository = (*SellerProductRepository)(nil)

type OrderRepository struct {
	orders collection[entity.Order]
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{orders: newCollection[entity.Order](db, kvstore.KeyOrders, nil)}
}

func (r *OrderRepository) List(ctx context.Context, buyerID string) ([]entity.Order, error) {
	all := r.orders.all(ctx)
	out := make([]entity.Order, 0, len(all))
	for _, o := range all {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	items := r.orders.all(ctx)
	i, ok := find(items, func(o entity.Order) bool { return o.ID == id })
	if !ok {
		return nil, nil
	}
	o := items[i]
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	db := r.orders.db
	if o.ID == "" {
		o.ID = db.NewID()
	}
	if o.BuyerID == "" {
		o.BuyerID = db.viewerID(ctx)
	}
	o.CreatedAt = db.Now()
	return r.orders.mutate(ctx, func(items []entity.Order) ([]entity.Order, error) {
		return append(items, *o), nil
	})
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
