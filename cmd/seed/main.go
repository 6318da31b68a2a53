package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gift-fulfillment/internal/config"
	"gift-fulfillment/internal/database"
	"gift-fulfillment/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("source", cfg.Catalog.Source).Msg("starting catalog seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	var loader seed.Loader
	if cfg.Catalog.S3Enabled {
		loader, err = seed.NewS3Loader(ctx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Region, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 loader: %w", err)
		}
	} else {
		loader = seed.NewFileLoader(logger)
	}

	catalog, err := loader.Load(ctx, cfg.Catalog.Source)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	importer := seed.NewImporter(pool, logger)
	if err := importer.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := importer.Import(ctx, catalog); err != nil {
		return err
	}

	logger.Info().Msg("catalog seed completed")
	return nil
}
