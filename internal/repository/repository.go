package repository

import (
	"context"

	"gift-fulfillment/internal/model"

	"github.com/jackc/pgx/v5"
)

// RepRepository defines read-only access to sales reps.
type RepRepository interface {
	// GetAll retrieves all reps ordered by last name.
	GetAll(ctx context.Context) ([]model.Rep, error)

	// GetByID retrieves a single rep by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id string) (*model.Rep, error)
}

// ProductRepository defines read-only access to the product catalogue.
type ProductRepository interface {
	// GetAll retrieves all products ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// UpdateTotal sets an order's total_cents within the provided transaction.
	UpdateTotal(ctx context.Context, tx pgx.Tx, id string, totalCents int64) error

	// GetByID retrieves an order by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// GetAllWithReps retrieves every order joined with its rep's display
	// name, newest first.
	GetAllWithReps(ctx context.Context) ([]model.OrderWithRep, error)
}

// FulfillmentRepository defines data access for fulfillments and their items.
type FulfillmentRepository interface {
	// Create inserts a new fulfillment within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, f *model.Fulfillment) error

	// CreateItems inserts fulfillment items within the provided transaction.
	CreateItems(ctx context.Context, tx pgx.Tx, items []model.FulfillmentItem) error

	// GetByID retrieves a fulfillment by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id string) (*model.Fulfillment, error)

	// GetByOrderID retrieves an order's fulfillments ordered by creation time.
	GetByOrderID(ctx context.Context, orderID string) ([]model.Fulfillment, error)

	// GetItemsByFulfillmentID retrieves a fulfillment's items ordered by
	// creation time.
	GetItemsByFulfillmentID(ctx context.Context, fulfillmentID string) ([]model.FulfillmentItem, error)

	// GetItemsByOrderID retrieves every item of every fulfillment belonging
	// to the order, within the provided transaction. The order total is
	// recomputed from this read, so the sum must see rows inserted earlier in
	// the same transaction.
	GetItemsByOrderID(ctx context.Context, tx pgx.Tx, orderID string) ([]model.FulfillmentItem, error)

	// UpdateStatus sets a fulfillment's status and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status model.FulfillmentStatus) (*model.Fulfillment, error)
}
