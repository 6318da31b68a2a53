// Package seed imports the read-only catalog reference data (reps and
// products) from a JSON document on the local file system or in S3, and
// applies the database schema. Orders and fulfillments are never seeded;
// they are created only through the API.
package seed

import "context"

// RepEntry is a sales rep in a catalog document.
type RepEntry struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
}

// ProductEntry is a product in a catalog document.
type ProductEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	PriceCents int64  `json:"price_cents"`
}

// Catalog is the parsed form of a catalog document.
type Catalog struct {
	Reps     []RepEntry     `json:"reps"`
	Products []ProductEntry `json:"products"`
}

// Loader reads a catalog document from some source. Sources ending in .gz
// are decompressed transparently.
type Loader interface {
	// Load reads and parses the catalog document at source (a file path or
	// object key, depending on the implementation).
	Load(ctx context.Context, source string) (*Catalog, error)
}
