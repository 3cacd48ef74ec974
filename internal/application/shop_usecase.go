package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

var ErrMixedCurrencies = errors.New("order items use different currencies")

type OrderLine struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=1"`
}

type PlaceOrderRequest struct {
	Items []OrderLine `json:"items" binding:"required,min=1,dive"`
}

type ShopUseCases struct {
	Products repo.ProductRepository
	Orders   repo.OrderRepository
	Users    repo.UserRepository
	Viewer   ViewerResolver
	Notifier *Notifier
	Metrics  *Metrics
}

func NewShopUseCases(p repo.ProductRepository, o repo.OrderRepository, u repo.UserRepository, v ViewerResolver, n *Notifier, m *Metrics) *ShopUseCases {
	return &ShopUseCases{Products: p, Orders: o, Users: u, Viewer: v, Notifier: n, Metrics: m}
}

func (uc *ShopUseCases) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return uc.Products.List(ctx)
}

func (uc *ShopUseCases) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.Products.GetByID(ctx, id)
}

// PlaceOrder snapshots name and price of every line at purchase time.
func (uc *ShopUseCases) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, uc.Metrics.rejected("shop.place_order", invalid("items", "at least one item is required"))
	}
	for i, line := range req.Items {
		if line.ProductID == "" {
			return nil, uc.Metrics.rejected("shop.place_order", invalid(fmt.Sprintf("items[%d].productId", i), "product id is required"))
		}
		if line.Quantity < 1 {
			return nil, uc.Metrics.rejected("shop.place_order", invalid(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1"))
		}
	}

	order := &entity.Order{Status: entity.OrderPlaced, Items: make([]entity.OrderItem, 0, len(req.Items))}
	for i, line := range req.Items {
		p, err := uc.Products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, uc.Metrics.rejected("shop.place_order", invalid(fmt.Sprintf("items[%d].productId", i), "unknown product "+line.ProductID))
		}
		if order.Currency == "" {
			order.Currency = p.Currency
		} else if order.Currency != p.Currency {
			return nil, ErrMixedCurrencies
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:  p.ID,
			Name:       p.Name,
			Quantity:   line.Quantity,
			PriceCents: p.PriceCents,
		})
	}
	order.TotalCents = order.ComputeTotal()
	if uc.Viewer != nil {
		order.BuyerID = uc.Viewer.ViewerID(ctx)
	}

	if err := uc.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.Metrics.orderPlaced()
	if uc.Users != nil && uc.Notifier != nil {
		if u, err := uc.Users.GetByID(ctx, order.BuyerID); err == nil {
			uc.Notifier.OrderPlaced(ctx, u, order)
		}
	}
	return order, nil
}

func (uc *ShopUseCases) ListOrders(ctx context.Context) ([]entity.Order, error) {
	buyer := entity.GuestID
	if uc.Viewer != nil {
		buyer = uc.Viewer.ViewerID(ctx)
	}
	return uc.Orders.List(ctx, buyer)
}

// GetOrder only returns orders of the acting buyer.
func (uc *ShopUseCases) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	if id == "" {
		return nil, uc.Metrics.rejected("shop.get_order", invalid("id", "order id is required"))
	}
	o, err := uc.Orders.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	if uc.Viewer != nil && o.BuyerID != uc.Viewer.ViewerID(ctx) {
		return nil, nil
	}
	return o, nil
}
