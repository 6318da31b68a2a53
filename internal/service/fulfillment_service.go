package service

import (
	"context"
	"fmt"
	"time"

	"gift-fulfillment/internal/model"
	"gift-fulfillment/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// validTransitions is the fulfillment status state machine. Any transition
// not listed here, including self-transitions, is rejected. delivered and
// cancelled are terminal.
var validTransitions = map[model.FulfillmentStatus][]model.FulfillmentStatus{
	model.FulfillmentStatusPending:    {model.FulfillmentStatusProcessing, model.FulfillmentStatusCancelled},
	model.FulfillmentStatusProcessing: {model.FulfillmentStatusShipped, model.FulfillmentStatusCancelled},
	model.FulfillmentStatusShipped:    {model.FulfillmentStatusDelivered},
	model.FulfillmentStatusDelivered:  {},
	model.FulfillmentStatusCancelled:  {},
}

// canTransition reports whether the state machine permits from -> to.
func canTransition(from, to model.FulfillmentStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// fulfillmentService implements FulfillmentService.
type fulfillmentService struct {
	fulfillmentRepo repository.FulfillmentRepository
	productRepo     repository.ProductRepository
	logger          zerolog.Logger
}

// NewFulfillmentService creates a new fulfillment service.
func NewFulfillmentService(
	fulfillmentRepo repository.FulfillmentRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) FulfillmentService {
	return &fulfillmentService{
		fulfillmentRepo: fulfillmentRepo,
		productRepo:     productRepo,
		logger:          logger.With().Str("service", "fulfillment").Logger(),
	}
}

// CreateFulfillment creates a fulfillment with its items under orderID within
// the caller's transaction. Each item's unit price is a snapshot of the
// product's price at this moment; later price changes never alter it. If any
// product does not exist the whole operation fails and nothing is persisted
// once the caller rolls back.
func (s *fulfillmentService) CreateFulfillment(
	ctx context.Context,
	tx pgx.Tx,
	orderID string,
	req *model.FulfillmentRequest,
) (*model.FulfillmentWithItems, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	fulfillment := model.Fulfillment{
		ID:             newID("ful"),
		OrderID:        orderID,
		RecipientName:  req.RecipientName,
		RecipientEmail: req.RecipientEmail,
		ShipToAddress:  req.ShipToAddress,
		ShipToCity:     req.ShipToCity,
		ShipToState:    req.ShipToState,
		ShipToZip:      req.ShipToZip,
		Status:         model.FulfillmentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Resolve every product before writing anything, snapshotting prices in
	// the input order.
	items := make([]model.FulfillmentItem, len(req.Items))
	for i, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		if product == nil {
			s.logger.Warn().
				Str("order_id", orderID).
				Str("product_id", item.ProductID).
				Msg("fulfillment references unknown product")
			return nil, model.NewNotFoundError("Product", item.ProductID)
		}

		items[i] = model.FulfillmentItem{
			ID:             newID("item"),
			FulfillmentID:  fulfillment.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPriceCents: product.PriceCents,
			CreatedAt:      now,
		}
	}

	if err := s.fulfillmentRepo.Create(ctx, tx, &fulfillment); err != nil {
		return nil, fmt.Errorf("failed to create fulfillment: %w", err)
	}

	if err := s.fulfillmentRepo.CreateItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to create fulfillment items: %w", err)
	}

	s.logger.Info().
		Str("fulfillment_id", fulfillment.ID).
		Str("order_id", orderID).
		Int("item_count", len(items)).
		Msg("fulfillment created")

	return &model.FulfillmentWithItems{Fulfillment: fulfillment, Items: items}, nil
}

// UpdateStatus transitions a fulfillment to a new status. Transitions not in
// the state machine table fail and leave the row unchanged.
func (s *fulfillmentService) UpdateStatus(
	ctx context.Context,
	id string,
	status model.FulfillmentStatus,
) (*model.FulfillmentWithItems, error) {
	fulfillment, err := s.fulfillmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfillment: %w", err)
	}
	if fulfillment == nil {
		return nil, model.NewNotFoundError("Fulfillment", id)
	}

	if !canTransition(fulfillment.Status, status) {
		s.logger.Warn().
			Str("fulfillment_id", id).
			Str("current", string(fulfillment.Status)).
			Str("requested", string(status)).
			Msg("invalid status transition rejected")
		return nil, model.NewInvalidTransitionError(fulfillment.Status, status)
	}

	updated, err := s.fulfillmentRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update fulfillment status: %w", err)
	}
	if updated == nil {
		return nil, model.NewNotFoundError("Fulfillment", id)
	}

	items, err := s.fulfillmentRepo.GetItemsByFulfillmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfillment items: %w", err)
	}

	s.logger.Info().
		Str("fulfillment_id", id).
		Str("from", string(fulfillment.Status)).
		Str("to", string(status)).
		Msg("fulfillment status updated")

	return &model.FulfillmentWithItems{Fulfillment: *updated, Items: items}, nil
}

// GetByID retrieves a fulfillment with its items.
func (s *fulfillmentService) GetByID(ctx context.Context, id string) (*model.FulfillmentWithItems, error) {
	fulfillment, err := s.fulfillmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfillment: %w", err)
	}
	if fulfillment == nil {
		return nil, model.NewNotFoundError("Fulfillment", id)
	}

	items, err := s.fulfillmentRepo.GetItemsByFulfillmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfillment items: %w", err)
	}

	return &model.FulfillmentWithItems{Fulfillment: *fulfillment, Items: items}, nil
}

// GetByOrderID retrieves an order's fulfillments with their items, ordered by
// creation time.
func (s *fulfillmentService) GetByOrderID(ctx context.Context, orderID string) ([]model.FulfillmentWithItems, error) {
	fulfillments, err := s.fulfillmentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfillments: %w", err)
	}

	result := make([]model.FulfillmentWithItems, 0, len(fulfillments))
	for _, f := range fulfillments {
		items, err := s.fulfillmentRepo.GetItemsByFulfillmentID(ctx, f.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get fulfillment items: %w", err)
		}
		result = append(result, model.FulfillmentWithItems{Fulfillment: f, Items: items})
	}

	return result, nil
}
