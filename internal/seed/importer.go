package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for the five relations. Fulfillments cascade from orders
// and items from fulfillments (exclusive ownership); products are restricted
// while referenced by items.
const Schema = `
	CREATE TABLE IF NOT EXISTS reps (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		sku TEXT NOT NULL UNIQUE,
		price_cents BIGINT NOT NULL CHECK (price_cents >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		rep_id TEXT NOT NULL REFERENCES reps(id),
		status TEXT NOT NULL DEFAULT 'pending',
		total_cents BIGINT NOT NULL DEFAULT 0 CHECK (total_cents >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS fulfillments (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		recipient_name TEXT NOT NULL,
		recipient_email TEXT,
		ship_to_address TEXT NOT NULL,
		ship_to_city TEXT NOT NULL,
		ship_to_state TEXT NOT NULL,
		ship_to_zip TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		tracking_number TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS fulfillment_items (
		id TEXT PRIMARY KEY,
		fulfillment_id TEXT NOT NULL REFERENCES fulfillments(id) ON DELETE CASCADE,
		product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price_cents BIGINT NOT NULL CHECK (unit_price_cents >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_orders_rep_id ON orders(rep_id);
	CREATE INDEX IF NOT EXISTS idx_fulfillments_order_id ON fulfillments(order_id);
	CREATE INDEX IF NOT EXISTS idx_fulfillment_items_fulfillment_id ON fulfillment_items(fulfillment_id);
`

// Importer applies the schema and upserts catalog reference data.
type Importer struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewImporter creates a new catalog importer.
func NewImporter(pool *pgxpool.Pool, logger zerolog.Logger) *Importer {
	return &Importer{
		pool:   pool,
		logger: logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// EnsureSchema creates the database schema if it does not exist.
func (i *Importer) EnsureSchema(ctx context.Context) error {
	if _, err := i.pool.Exec(ctx, Schema); err != nil {
		i.logger.Error().Err(err).Msg("failed to apply schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	i.logger.Info().Msg("schema applied")
	return nil
}

// Import upserts the catalog's reps and products in a single transaction.
// Existing rows are updated in place; ids never change.
func (i *Importer) Import(ctx context.Context, catalog *Catalog) error {
	tx, err := i.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repQuery := `
		INSERT INTO reps (id, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    updated_at = NOW()
	`
	for _, rep := range catalog.Reps {
		if _, err := tx.Exec(ctx, repQuery, rep.ID, rep.FirstName, rep.LastName, rep.Email, rep.Phone); err != nil {
			i.logger.Error().Err(err).Str("rep_id", rep.ID).Msg("failed to upsert rep")
			return fmt.Errorf("failed to upsert rep %s: %w", rep.ID, err)
		}
	}

	productQuery := `
		INSERT INTO products (id, name, sku, price_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    sku = EXCLUDED.sku,
		    price_cents = EXCLUDED.price_cents,
		    updated_at = NOW()
	`
	for _, product := range catalog.Products {
		if _, err := tx.Exec(ctx, productQuery, product.ID, product.Name, product.SKU, product.PriceCents); err != nil {
			i.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to upsert product")
			return fmt.Errorf("failed to upsert product %s: %w", product.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit import transaction: %w", err)
	}

	i.logger.Info().
		Int("reps", len(catalog.Reps)).
		Int("products", len(catalog.Products)).
		Msg("catalog imported")

	return nil
}
