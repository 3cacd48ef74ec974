package application

import (
	"context"
	"strings"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

type ListingInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PriceCents  int64  `json:"priceCents" binding:"gte=0"`
	Currency    string `json:"currency" binding:"required"`
	Stock       int    `json:"stock" binding:"gte=0"`
	Status      string `json:"status" binding:"omitempty,oneof=active draft"`
}

// Listing is a seller product with its display price.
type Listing struct {
	entity.SellerProduct
	DisplayPrice string `json:"displayPrice"`
}

type SellerUseCases struct {
	Repo    repo.SellerProductRepository
	Viewer  ViewerResolver
	Metrics *Metrics
}

func NewSellerUseCases(r repo.SellerProductRepository, v ViewerResolver, m *Metrics) *SellerUseCases {
	return &SellerUseCases{Repo: r, Viewer: v, Metrics: m}
}

func (uc *SellerUseCases) seller(ctx context.Context) string {
	if uc.Viewer == nil {
		return entity.GuestID
	}
	return uc.Viewer.ViewerID(ctx)
}

func (uc *SellerUseCases) ListListings(ctx context.Context) ([]Listing, error) {
	items, err := uc.Repo.List(ctx, uc.seller(ctx))
	if err != nil {
		return nil, err
	}
	out := make([]Listing, 0, len(items))
	for _, p := range items {
		out = append(out, toListing(p))
	}
	return out, nil
}

func (uc *SellerUseCases) CreateListing(ctx context.Context, in ListingInput) (Listing, error) {
	code, err := uc.validate("seller.create_listing", in)
	if err != nil {
		return Listing{}, err
	}
	p := &entity.SellerProduct{
		SellerID:    uc.seller(ctx),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Image:       in.Image,
		PriceCents:  in.PriceCents,
		Currency:    code,
		Stock:       in.Stock,
		Status:      statusOrDefault(in.Status),
	}
	if err := uc.Repo.Create(ctx, p); err != nil {
		return Listing{}, err
	}
	return toListing(*p), nil
}

// UpdateListing replaces the editable fields of a listing the viewer owns.
func (uc *SellerUseCases) UpdateListing(ctx context.Context, id string, in ListingInput) (Listing, error) {
	if id == "" {
		return Listing{}, uc.Metrics.rejected("seller.update_listing", invalid("id", "listing id is required"))
	}
	code, err := uc.validate("seller.update_listing", in)
	if err != nil {
		return Listing{}, err
	}
	p, err := uc.owned(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Image = in.Image
	p.PriceCents = in.PriceCents
	p.Currency = code
	p.Stock = in.Stock
	p.Status = statusOrDefault(in.Status)
	if err := uc.Repo.Update(ctx, p); err != nil {
		return Listing{}, err
	}
	return toListing(*p), nil
}

func (uc *SellerUseCases) DeleteListing(ctx context.Context, id string) error {
	if id == "" {
		return uc.Metrics.rejected("seller.delete_listing", invalid("id", "listing id is required"))
	}
	if _, err := uc.owned(ctx, id); err != nil {
		return err
	}
	return uc.Repo.Delete(ctx, id)
}

func (uc *SellerUseCases) owned(ctx context.Context, id string) (*entity.SellerProduct, error) {
	p, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.SellerID != uc.seller(ctx) {
		return nil, repo.ErrNotFound
	}
	return p, nil
}

func (uc *SellerUseCases) validate(usecase string, in ListingInput) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", uc.Metrics.rejected(usecase, invalid("name", "name is required"))
	}
	if in.PriceCents < 0 {
		return "", uc.Metrics.rejected(usecase, invalid("priceCents", "price cannot be negative"))
	}
	if in.Stock < 0 {
		return "", uc.Metrics.rejected(usecase, invalid("stock", "stock cannot be negative"))
	}
	if in.Status != "" && in.Status != entity.ListingActive && in.Status != entity.ListingDraft {
		return "", uc.Metrics.rejected(usecase, invalid("status", "status must be active or draft"))
	}
	code, err := helpers.ValidateCurrency(in.Currency)
	if err != nil {
		return "", uc.Metrics.rejected(usecase, invalid("currency", "currency must be an ISO 4217 code"))
	}
	return code, nil
}

func statusOrDefault(s string) string {
	if s == "" {
		return entity.ListingDraft
	}
	return s
}

func toListing(p entity.SellerProduct) Listing {
	display, err := helpers.FormatPrice(p.PriceCents, p.Currency)
	if err != nil {
		display = ""
	}
	return Listing{SellerProduct: p, DisplayPrice: display}
}
