package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Customer is a registered account. Password only carries plaintext input on
// its way to the hasher and is never persisted.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required,min=3,max=255,personname"`
	TaxID        string    `json:"tax_id" validate:"required,taxid"`
	Phone        string    `json:"phone" validate:"required,phone"`
	Password     string    `json:"password,omitempty" validate:"omitempty,min=6,max=60"`
	Role         string    `json:"role" validate:"required,oneof=admin user"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SameProfile reports whether o carries the same name, tax id, phone, email
// and role as c. Identifiers, password and timestamps are ignored.
func (c *Customer) SameProfile(o *Customer) bool {
	return c.Name == o.Name &&
		c.TaxID == o.TaxID &&
		c.Phone == o.Phone &&
		c.Email == o.Email &&
		c.Role == o.Role
}

// IsAdmin reports whether the customer holds the admin role.
func (c *Customer) IsAdmin() bool { return c.Role == RoleAdmin }
