package model

import (
	"fmt"
	"time"
)

// FulfillmentStatus is the lifecycle state of a fulfillment (shipment).
type FulfillmentStatus string

const (
	FulfillmentStatusPending    FulfillmentStatus = "pending"
	FulfillmentStatusProcessing FulfillmentStatus = "processing"
	FulfillmentStatusShipped    FulfillmentStatus = "shipped"
	FulfillmentStatusDelivered  FulfillmentStatus = "delivered"
	FulfillmentStatusCancelled  FulfillmentStatus = "cancelled"
)

// Valid reports whether s is one of the known fulfillment statuses.
func (s FulfillmentStatus) Valid() bool {
	switch s {
	case FulfillmentStatusPending, FulfillmentStatusProcessing,
		FulfillmentStatusShipped, FulfillmentStatusDelivered,
		FulfillmentStatusCancelled:
		return true
	}
	return false
}

// Fulfillment represents an individual shipment within an order. An order can
// have multiple fulfillments shipping to different addresses.
type Fulfillment struct {
	ID             string            `json:"id" db:"id"`
	OrderID        string            `json:"order_id" db:"order_id"`
	RecipientName  string            `json:"recipient_name" db:"recipient_name"`
	RecipientEmail *string           `json:"recipient_email" db:"recipient_email"`
	ShipToAddress  string            `json:"ship_to_address" db:"ship_to_address"`
	ShipToCity     string            `json:"ship_to_city" db:"ship_to_city"`
	ShipToState    string            `json:"ship_to_state" db:"ship_to_state"`
	ShipToZip      string            `json:"ship_to_zip" db:"ship_to_zip"`
	Status         FulfillmentStatus `json:"status" db:"status"`
	TrackingNumber *string           `json:"tracking_number" db:"tracking_number"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// FulfillmentItem is a product line item within a fulfillment.
// UnitPriceCents is a snapshot of the product's price at creation time; it is
// never updated, even if the product's price later changes.
type FulfillmentItem struct {
	ID             string    `json:"id" db:"id"`
	FulfillmentID  string    `json:"fulfillment_id" db:"fulfillment_id"`
	ProductID      string    `json:"product_id" db:"product_id"`
	Quantity       int       `json:"quantity" db:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents" db:"unit_price_cents"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// FulfillmentWithItems is a fulfillment with its line items attached.
type FulfillmentWithItems struct {
	Fulfillment
	Items []FulfillmentItem `json:"items"`
}

// FulfillmentItemRequest is a single line item in a fulfillment request.
type FulfillmentItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// FulfillmentRequest is the payload for creating a fulfillment, either as the
// initial fulfillment of a new order or as an addition to an existing one.
type FulfillmentRequest struct {
	RecipientName  string                   `json:"recipient_name"`
	RecipientEmail *string                  `json:"recipient_email,omitempty"`
	ShipToAddress  string                   `json:"ship_to_address"`
	ShipToCity     string                   `json:"ship_to_city"`
	ShipToState    string                   `json:"ship_to_state"`
	ShipToZip      string                   `json:"ship_to_zip"`
	Items          []FulfillmentItemRequest `json:"items"`
}

// Validate checks the structural shape of the request. Referential checks
// (product existence) are the services' responsibility.
func (r *FulfillmentRequest) Validate() error {
	if r.RecipientName == "" {
		return NewValidationError("recipient_name is required")
	}
	if r.ShipToAddress == "" {
		return NewValidationError("ship_to_address is required")
	}
	if r.ShipToCity == "" {
		return NewValidationError("ship_to_city is required")
	}
	if len(r.ShipToState) != 2 {
		return NewValidationError("ship_to_state must be 2 characters")
	}
	if len(r.ShipToZip) < 5 {
		return NewValidationError("ship_to_zip must be at least 5 characters")
	}
	if len(r.Items) == 0 {
		return NewValidationError("at least one item is required")
	}
	for i, item := range r.Items {
		if item.ProductID == "" {
			return NewValidationError(fmt.Sprintf("items[%d]: product_id is required", i))
		}
		if item.Quantity <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d]: quantity must be positive", i))
		}
	}
	return nil
}

// UpdateFulfillmentStatusRequest is the payload for a status transition.
type UpdateFulfillmentStatusRequest struct {
	Status FulfillmentStatus `json:"status"`
}

// Validate checks that the requested status is a known one. Whether the
// transition is permitted from the current status is the lifecycle engine's
// decision.
func (r *UpdateFulfillmentStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return NewValidationError(fmt.Sprintf("unknown status '%s'", r.Status))
	}
	return nil
}
