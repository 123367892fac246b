package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type productRequest struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name" example:"Widget"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	Quantity    int             `json:"quantity" example:"5"`
	Description string          `json:"description,omitempty" example:"A small widget"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
}

func (r productRequest) toDomain() *domain.Product {
	return &domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: r.Description,
		ExpiresAt:   r.ExpiresAt,
	}
}

type productResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Description: p.Description,
		ExpiresAt:   p.ExpiresAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(ps []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}
