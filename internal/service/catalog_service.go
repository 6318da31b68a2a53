package service

import (
	"context"
	"fmt"

	"gift-fulfillment/internal/model"
	"gift-fulfillment/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService over the read-only reference data.
type catalogService struct {
	productRepo repository.ProductRepository
	repRepo     repository.RepRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	productRepo repository.ProductRepository,
	repRepo repository.RepRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		repRepo:     repRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// ListProducts retrieves all products.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.NewNotFoundError("Product", id)
	}
	return product, nil
}

// ListReps retrieves all sales reps.
func (s *catalogService) ListReps(ctx context.Context) ([]model.Rep, error) {
	reps, err := s.repRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reps: %w", err)
	}
	return reps, nil
}

// GetRep retrieves a single rep by ID.
func (s *catalogService) GetRep(ctx context.Context, id string) (*model.Rep, error) {
	rep, err := s.repRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rep: %w", err)
	}
	if rep == nil {
		return nil, model.NewNotFoundError("Rep", id)
	}
	return rep, nil
}
