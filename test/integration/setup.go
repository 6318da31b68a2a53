package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"gift-fulfillment/internal/database"
	"gift-fulfillment/internal/handler"
	"gift-fulfillment/internal/repository"
	"gift-fulfillment/internal/router"
	"gift-fulfillment/internal/seed"
	"gift-fulfillment/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the schema and
// imports the catalog reference data.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPoolFromURL(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	importer := seed.NewImporter(pool, zerolog.Nop())
	if err := importer.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := importer.Import(ctx, testCatalog()); err != nil {
		t.Fatalf("failed to import catalog: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// testCatalog returns the reference data imported into every test database.
func testCatalog() *seed.Catalog {
	phone := "+15551234567"
	return &seed.Catalog{
		Reps: []seed.RepEntry{
			{ID: "rep_001", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@example.com", Phone: &phone},
			{ID: "rep_002", FirstName: "Mike", LastName: "Chen", Email: "mike.chen@example.com"},
			{ID: "rep_003", FirstName: "Emily", LastName: "Rodriguez", Email: "emily.rodriguez@example.com"},
		},
		Products: []seed.ProductEntry{
			{ID: "prod_001", Name: "Welcome Gift Box", SKU: "GIFT-WELCOME-001", PriceCents: 4500},
			{ID: "prod_002", Name: "Premium Thank You Package", SKU: "GIFT-THANKYOU-001", PriceCents: 7500},
			{ID: "prod_003", Name: "Celebration Bundle", SKU: "GIFT-CELEBRATE-001", PriceCents: 12000},
			{ID: "prod_004", Name: "Referral Reward Kit", SKU: "GIFT-REFERRAL-001", PriceCents: 5000},
		},
	}
}

// setupTestServer wires the full application stack against the test database.
func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	repRepo := repository.NewRepRepository(testDB.Pool, logger)
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	fulfillmentRepo := repository.NewFulfillmentRepository(testDB.Pool, logger)

	catalogService := service.NewCatalogService(productRepo, repRepo, logger)
	fulfillmentService := service.NewFulfillmentService(fulfillmentRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, fulfillmentRepo, fulfillmentService, repRepo, logger)

	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	fulfillmentHandler := handler.NewFulfillmentHandler(fulfillmentService, logger)

	return router.New(catalogHandler, orderHandler, fulfillmentHandler, logger)
}

// CleanupOrders removes all orders (fulfillments and items cascade). Catalog
// reference data is left in place.
func CleanupOrders(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM orders"); err != nil {
		t.Fatalf("failed to clean orders: %v", err)
	}
}

// SetProductPrice updates a product's catalog price directly, bypassing the
// API (products are read-only through it).
func SetProductPrice(t *testing.T, pool *pgxpool.Pool, productID string, priceCents int64) {
	t.Helper()

	tag, err := pool.Exec(context.Background(),
		"UPDATE products SET price_cents = $2, updated_at = NOW() WHERE id = $1",
		productID, priceCents,
	)
	if err != nil {
		t.Fatalf("failed to update product price: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("expected to update 1 product, updated %d", tag.RowsAffected())
	}
}

// CountRows returns the number of rows in the given table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}
