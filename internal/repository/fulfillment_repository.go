package repository

import (
	"context"
	"fmt"

	"gift-fulfillment/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// fulfillmentRepository implements the FulfillmentRepository interface using
// PostgreSQL.
type fulfillmentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFulfillmentRepository creates a new PostgreSQL-backed fulfillment
// repository.
func NewFulfillmentRepository(pool *pgxpool.Pool, logger zerolog.Logger) FulfillmentRepository {
	return &fulfillmentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "fulfillment").Logger(),
	}
}

const fulfillmentColumns = `id, order_id, recipient_name, recipient_email,
	ship_to_address, ship_to_city, ship_to_state, ship_to_zip,
	status, tracking_number, created_at, updated_at`

func scanFulfillment(row pgx.Row, f *model.Fulfillment) error {
	return row.Scan(
		&f.ID, &f.OrderID, &f.RecipientName, &f.RecipientEmail,
		&f.ShipToAddress, &f.ShipToCity, &f.ShipToState, &f.ShipToZip,
		&f.Status, &f.TrackingNumber, &f.CreatedAt, &f.UpdatedAt,
	)
}

// Create inserts a new fulfillment within the provided transaction.
func (r *fulfillmentRepository) Create(ctx context.Context, tx pgx.Tx, f *model.Fulfillment) error {
	query := `
		INSERT INTO fulfillments (id, order_id, recipient_name, recipient_email,
			ship_to_address, ship_to_city, ship_to_state, ship_to_zip,
			status, tracking_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := tx.Exec(ctx, query,
		f.ID, f.OrderID, f.RecipientName, f.RecipientEmail,
		f.ShipToAddress, f.ShipToCity, f.ShipToState, f.ShipToZip,
		f.Status, f.TrackingNumber, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("fulfillment_id", f.ID).
			Str("order_id", f.OrderID).
			Msg("failed to create fulfillment")
		return fmt.Errorf("failed to create fulfillment: %w", err)
	}

	r.logger.Debug().
		Str("fulfillment_id", f.ID).
		Str("order_id", f.OrderID).
		Msg("fulfillment created")

	return nil
}

// CreateItems inserts fulfillment items within the provided transaction.
func (r *fulfillmentRepository) CreateItems(ctx context.Context, tx pgx.Tx, items []model.FulfillmentItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO fulfillment_items (id, fulfillment_id, product_id, quantity, unit_price_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.FulfillmentID, item.ProductID, item.Quantity, item.UnitPriceCents, item.CreatedAt)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("fulfillment_id", items[i].FulfillmentID).
				Str("product_id", items[i].ProductID).
				Msg("failed to create fulfillment item")
			return fmt.Errorf("failed to create fulfillment item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Str("fulfillment_id", items[0].FulfillmentID).
		Msg("fulfillment items created")

	return nil
}

// GetByID retrieves a fulfillment by its ID.
func (r *fulfillmentRepository) GetByID(ctx context.Context, id string) (*model.Fulfillment, error) {
	query := `SELECT ` + fulfillmentColumns + ` FROM fulfillments WHERE id = $1`

	var f model.Fulfillment
	err := scanFulfillment(r.pool.QueryRow(ctx, query, id), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("fulfillment_id", id).Msg("fulfillment not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("fulfillment_id", id).Msg("failed to query fulfillment")
		return nil, fmt.Errorf("failed to query fulfillment: %w", err)
	}

	return &f, nil
}

// GetByOrderID retrieves an order's fulfillments ordered by creation time.
func (r *fulfillmentRepository) GetByOrderID(ctx context.Context, orderID string) ([]model.Fulfillment, error) {
	query := `SELECT ` + fulfillmentColumns + ` FROM fulfillments WHERE order_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query fulfillments")
		return nil, fmt.Errorf("failed to query fulfillments: %w", err)
	}
	defer rows.Close()

	var fulfillments []model.Fulfillment
	for rows.Next() {
		var f model.Fulfillment
		if err := scanFulfillment(rows, &f); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan fulfillment row")
			return nil, fmt.Errorf("failed to scan fulfillment: %w", err)
		}
		fulfillments = append(fulfillments, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating fulfillment rows")
		return nil, fmt.Errorf("error iterating fulfillments: %w", err)
	}

	return fulfillments, nil
}

// GetItemsByFulfillmentID retrieves a fulfillment's items ordered by creation
// time.
func (r *fulfillmentRepository) GetItemsByFulfillmentID(ctx context.Context, fulfillmentID string) ([]model.FulfillmentItem, error) {
	query := `
		SELECT id, fulfillment_id, product_id, quantity, unit_price_cents, created_at
		FROM fulfillment_items
		WHERE fulfillment_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, fulfillmentID)
	if err != nil {
		r.logger.Error().Err(err).Str("fulfillment_id", fulfillmentID).Msg("failed to query fulfillment items")
		return nil, fmt.Errorf("failed to query fulfillment items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows, r.logger)
}

// GetItemsByOrderID retrieves every item of every fulfillment belonging to
// the order, within the provided transaction.
func (r *fulfillmentRepository) GetItemsByOrderID(ctx context.Context, tx pgx.Tx, orderID string) ([]model.FulfillmentItem, error) {
	query := `
		SELECT fi.id, fi.fulfillment_id, fi.product_id, fi.quantity, fi.unit_price_cents, fi.created_at
		FROM fulfillment_items fi
		JOIN fulfillments f ON f.id = fi.fulfillment_id
		WHERE f.order_id = $1
	`

	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows, r.logger)
}

// UpdateStatus sets a fulfillment's status and returns the updated row.
func (r *fulfillmentRepository) UpdateStatus(ctx context.Context, id string, status model.FulfillmentStatus) (*model.Fulfillment, error) {
	query := `
		UPDATE fulfillments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + fulfillmentColumns

	var f model.Fulfillment
	err := scanFulfillment(r.pool.QueryRow(ctx, query, id, status), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("fulfillment_id", id).Msg("fulfillment not found")
			return nil, nil
		}
		r.logger.Error().
			Err(err).
			Str("fulfillment_id", id).
			Str("status", string(status)).
			Msg("failed to update fulfillment status")
		return nil, fmt.Errorf("failed to update fulfillment status: %w", err)
	}

	r.logger.Debug().
		Str("fulfillment_id", id).
		Str("status", string(status)).
		Msg("fulfillment status updated")

	return &f, nil
}

// collectItems scans fulfillment item rows into a slice.
func collectItems(rows pgx.Rows, logger zerolog.Logger) ([]model.FulfillmentItem, error) {
	var items []model.FulfillmentItem
	for rows.Next() {
		var item model.FulfillmentItem
		err := rows.Scan(&item.ID, &item.FulfillmentID, &item.ProductID, &item.Quantity, &item.UnitPriceCents, &item.CreatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan fulfillment item row")
			return nil, fmt.Errorf("failed to scan fulfillment item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating fulfillment item rows")
		return nil, fmt.Errorf("error iterating fulfillment items: %w", err)
	}

	return items, nil
}
