package model

import "time"

// Rep represents a sales representative. Reps are read-only reference data,
// created only by the seed importer.
type Rep struct {
	ID        string    `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the rep's full name as shown in order listings.
func (r *Rep) DisplayName() string {
	return r.FirstName + " " + r.LastName
}

// Product represents a gift item in the catalogue. Products are read-only
// reference data; PriceCents is in minor currency units (4500 = $45.00).
type Product struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	SKU        string    `json:"sku" db:"sku"`
	PriceCents int64     `json:"price_cents" db:"price_cents"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
