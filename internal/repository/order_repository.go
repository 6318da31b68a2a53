package repository

import (
	"context"
	"fmt"

	"gift-fulfillment/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new order within the provided transaction.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, rep_id, status, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, query,
		order.ID, order.RepID, order.Status, order.TotalCents, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Str("rep_id", order.RepID).
		Msg("order created")

	return nil
}

// UpdateTotal sets an order's total_cents within the provided transaction.
func (r *orderRepository) UpdateTotal(ctx context.Context, tx pgx.Tx, id string, totalCents int64) error {
	query := `
		UPDATE orders
		SET total_cents = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, id, totalCents)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id).
			Int64("total_cents", totalCents).
			Msg("failed to update order total")
		return fmt.Errorf("failed to update order total: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update order total: order %s not found", id)
	}

	r.logger.Debug().
		Str("order_id", id).
		Int64("total_cents", totalCents).
		Msg("order total updated")

	return nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `
		SELECT id, rep_id, status, total_cents, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.RepID, &order.Status, &order.TotalCents, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}

// GetAllWithReps retrieves every order joined with its rep's display name,
// newest first.
func (r *orderRepository) GetAllWithReps(ctx context.Context) ([]model.OrderWithRep, error) {
	query := `
		SELECT o.id, o.rep_id, o.status, o.total_cents, o.created_at, o.updated_at,
		       CONCAT(r.first_name, ' ', r.last_name) AS rep_name
		FROM orders o
		JOIN reps r ON r.id = o.rep_id
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders with reps")
		return nil, fmt.Errorf("failed to query orders with reps: %w", err)
	}
	defer rows.Close()

	var orders []model.OrderWithRep
	for rows.Next() {
		var o model.OrderWithRep
		err := rows.Scan(&o.ID, &o.RepID, &o.Status, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt, &o.RepName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
