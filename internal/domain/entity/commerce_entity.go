package entity

import "time"

// Product is a catalog item. Prices are integer minor units.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	CreatorID   string `json:"creatorId"`
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
	InStock     bool   `json:"inStock"`
}

// SellerProduct is a listing owned by the current seller.
type SellerProduct struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	ListingActive = "active"
	ListingDraft  = "draft"
)

// OrderItem snapshots the product at purchase time.
type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

// Subtotal is the line total in minor units.
func (i OrderItem) Subtotal() int64 { return i.PriceCents * int64(i.Quantity) }

// Order is immutable once created.
type Order struct {
	ID         string      `json:"id"`
	BuyerID    string      `json:"buyerId"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Currency   string      `json:"currency"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

const OrderPlaced = "placed"

// ComputeTotal sums the line items.
func (o Order) ComputeTotal() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Subtotal()
	}
	return total
}
