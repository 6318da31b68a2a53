package repository

import (
	"context"
	"testing"
	"time"

	"gift-fulfillment/internal/database"
	"gift-fulfillment/internal/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, applies the schema and seeds the
// catalog reference data. The container is terminated when the test finishes.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
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

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPoolFromURL(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if _, err := pool.Exec(ctx, seed.Schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	seedCatalog(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return pool
}

// seedCatalog inserts the reference reps and products used by the tests.
func seedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	reps := []struct {
		id, firstName, lastName, email string
	}{
		{"rep_001", "Sarah", "Johnson", "sarah.johnson@example.com"},
		{"rep_002", "Mike", "Chen", "mike.chen@example.com"},
		{"rep_003", "Emily", "Rodriguez", "emily.rodriguez@example.com"},
	}
	for _, rep := range reps {
		_, err := pool.Exec(ctx,
			"INSERT INTO reps (id, first_name, last_name, email) VALUES ($1, $2, $3, $4)",
			rep.id, rep.firstName, rep.lastName, rep.email,
		)
		if err != nil {
			t.Fatalf("failed to seed rep %s: %v", rep.id, err)
		}
	}

	products := []struct {
		id, name, sku string
		priceCents    int64
	}{
		{"prod_001", "Welcome Gift Box", "GIFT-WELCOME-001", 4500},
		{"prod_002", "Premium Thank You Package", "GIFT-THANKYOU-001", 7500},
		{"prod_003", "Celebration Bundle", "GIFT-CELEBRATE-001", 12000},
		{"prod_004", "Referral Reward Kit", "GIFT-REFERRAL-001", 5000},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, sku, price_cents) VALUES ($1, $2, $3, $4)",
			p.id, p.name, p.sku, p.priceCents,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}
