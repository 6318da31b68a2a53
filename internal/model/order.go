package model

import "time"

// OrderStatus is the lifecycle state of an order.
//
// Orders are created as pending and no operation in this API transitions them
// afterwards; the remaining states exist for an external settlement process.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a payment/transaction record owning one or more fulfillments.
// TotalCents is derived: it always equals the sum of unit_price_cents x
// quantity over every item of every fulfillment belonging to the order.
type Order struct {
	ID         string      `json:"id" db:"id"`
	RepID      string      `json:"rep_id" db:"rep_id"`
	Status     OrderStatus `json:"status" db:"status"`
	TotalCents int64       `json:"total_cents" db:"total_cents"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderWithRep is an order joined with its owning rep's display name.
// Used in order list responses.
type OrderWithRep struct {
	Order
	RepName string `json:"rep_name" db:"rep_name"`
}

// OrderWithFulfillments is an order with all fulfillments and their items.
// Used in order detail responses.
type OrderWithFulfillments struct {
	Order
	Fulfillments []FulfillmentWithItems `json:"fulfillments"`
}

// CreateOrderRequest is the payload for creating an order together with its
// initial fulfillment.
type CreateOrderRequest struct {
	RepID       string             `json:"rep_id"`
	Fulfillment FulfillmentRequest `json:"fulfillment"`
}

// Validate checks the structural shape of the request.
func (r *CreateOrderRequest) Validate() error {
	if r.RepID == "" {
		return NewValidationError("rep_id is required")
	}
	return r.Fulfillment.Validate()
}

// TotalCentsOf sums unit_price_cents x quantity over the given items.
func TotalCentsOf(items []FulfillmentItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}
