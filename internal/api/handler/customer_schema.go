package handler

import (
	"time"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// --- Request / Response types ---

type customerRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" example:"Ana Souza"`
	TaxID    string `json:"tax_id" example:"12345678901"`
	Phone    string `json:"phone" example:"11987654321"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password,omitempty" example:"s3cret!"`
	Role     string `json:"role" example:"user" enums:"admin,user"`
}

func (r customerRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:       r.ID,
		Name:     r.Name,
		TaxID:    r.TaxID,
		Phone:    r.Phone,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Phone:     c.Phone,
		Email:     c.Email,
		Role:      c.Role,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCustomerResponses(cs []*domain.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCustomerResponse(c))
	}
	return out
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret!"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type logoutRequest struct {
	Token string `json:"token" validate:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}
