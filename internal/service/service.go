package service

import (
	"context"

	"gift-fulfillment/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogService defines read-only operations over the product and rep
// reference data.
type CatalogService interface {
	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]model.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// ListReps retrieves all sales reps.
	ListReps(ctx context.Context) ([]model.Rep, error)

	// GetRep retrieves a single rep by ID.
	GetRep(ctx context.Context, id string) (*model.Rep, error)
}

// FulfillmentService owns the fulfillment lifecycle: creation with
// price-snapshotted items and the status state machine.
type FulfillmentService interface {
	// CreateFulfillment creates a fulfillment with its items under orderID,
	// within the caller's transaction. It snapshots each product's current
	// price into the item. It does not verify the order exists and does not
	// touch the order's total; both are the order service's responsibility.
	CreateFulfillment(ctx context.Context, tx pgx.Tx, orderID string, req *model.FulfillmentRequest) (*model.FulfillmentWithItems, error)

	// UpdateStatus transitions a fulfillment to a new status, enforcing the
	// permitted-transition table.
	UpdateStatus(ctx context.Context, id string, status model.FulfillmentStatus) (*model.FulfillmentWithItems, error)

	// GetByID retrieves a fulfillment with its items.
	GetByID(ctx context.Context, id string) (*model.FulfillmentWithItems, error)

	// GetByOrderID retrieves an order's fulfillments with their items,
	// ordered by creation time.
	GetByOrderID(ctx context.Context, orderID string) ([]model.FulfillmentWithItems, error)
}

// OrderService owns order creation, fulfillment attachment and the
// order/fulfillment total-consistency invariant.
type OrderService interface {
	// CreateOrder atomically creates an order with its initial fulfillment
	// and persists the derived total.
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderWithFulfillments, error)

	// AddFulfillment creates an additional fulfillment under an existing
	// order and recomputes the order total from scratch.
	AddFulfillment(ctx context.Context, orderID string, req *model.FulfillmentRequest) (*model.OrderWithFulfillments, error)

	// GetOrderWithFulfillments retrieves the full order aggregate.
	GetOrderWithFulfillments(ctx context.Context, id string) (*model.OrderWithFulfillments, error)

	// ListOrders retrieves every order with its rep's display name, newest
	// first.
	ListOrders(ctx context.Context) ([]model.OrderWithRep, error)
}

// newID returns a prefixed identifier, e.g. "ord_5f8c...".
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
