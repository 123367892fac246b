package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// validID reports whether id can be compared against a uuid column. Anything
// else would make postgres reject the whole statement.
func validID(ids ...string) bool {
	for _, id := range ids {
		if uuid.Validate(id) != nil {
			return false
		}
	}
	return true
}

type CustomerModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	TaxID        string    `gorm:"size:14;uniqueIndex;not null"`
	Phone        string    `gorm:"size:11;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

func toCustomerModel(c *domain.Customer) CustomerModel {
	return CustomerModel{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		Phone:        c.Phone,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Role:         c.Role,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m CustomerModel) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:           m.ID,
		Name:         m.Name,
		TaxID:        m.TaxID,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type ProductModel struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	OwnerID     string          `gorm:"type:uuid;index;not null"`
	Name        string          `gorm:"size:255;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(13,3);not null"`
	Quantity    int             `gorm:"not null"`
	Description string          `gorm:"size:1000"`
	ExpiresAt   *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ProductModel) TableName() string {
	return "products"
}

func toProductModel(p *domain.Product) ProductModel {
	return ProductModel{
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

func (m ProductModel) toDomain() *domain.Product {
	p := &domain.Product{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
	if m.ExpiresAt != nil {
		exp := m.ExpiresAt.UTC()
		p.ExpiresAt = &exp
	}
	return p
}

type AuditEventModel struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"size:64;not null"`
	ActorID    string    `gorm:"size:36"`
	SubjectID  string    `gorm:"size:36;index"`
	Detail     string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;index"`
}

func (AuditEventModel) TableName() string {
	return "audit_events"
}
