package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry owned by exactly one customer.
type Product struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name" validate:"required,min=2,max=255,productname"`
	Price       decimal.Decimal `json:"price" validate:"gte=0,lte=1000000"`
	Quantity    int             `json:"quantity" validate:"gte=0,lte=1000000"`
	Description string          `json:"description,omitempty" validate:"omitempty,min=3,max=1000"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SameListing reports whether o describes the same listing as p. Names are
// compared case-insensitively; prices by numeric value.
func (p *Product) SameListing(o *Product) bool {
	return p.ID == o.ID &&
		strings.EqualFold(p.Name, o.Name) &&
		p.Price.Equal(o.Price) &&
		p.Quantity == o.Quantity &&
		p.Description == o.Description &&
		sameInstant(p.ExpiresAt, o.ExpiresAt)
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
