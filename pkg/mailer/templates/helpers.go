package templates

import (
	"time"

	"github.com/oksasatya/creator-commerce/config"
)

type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04") }
}

func WithOrder(id, total string, lines []string) Option {
	return func(d *EmailData) {
		d.OrderID = id
		d.OrderTotal = total
		d.OrderLines = lines
	}
}

// NewBaseEmailData fills the company fields from cfg, then applies opts.
func NewBaseEmailData(cfg *config.Config, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		AppName:        cfg.AppName,
		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, name, email, opts...))
}

func NewOrderPlacedData(cfg *config.Config, name, email, orderID, total string, lines []string, opts ...Option) map[string]any {
	opts = append([]Option{WithOrder(orderID, total, lines)}, opts...)
	return ToMap(NewBaseEmailData(cfg, name, email, opts...))
}
