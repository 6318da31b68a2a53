package service

import (
	"context"
	"fmt"
	"time"

	"gift-fulfillment/internal/model"
	"gift-fulfillment/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService. It is the component responsible for
// keeping order.total_cents equal to the sum over all of the order's items of
// unit_price_cents x quantity.
type orderService struct {
	orderRepo          repository.OrderRepository
	fulfillmentRepo    repository.FulfillmentRepository
	fulfillmentService FulfillmentService
	repRepo            repository.RepRepository
	logger             zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	fulfillmentRepo repository.FulfillmentRepository,
	fulfillmentService FulfillmentService,
	repRepo repository.RepRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:          orderRepo,
		fulfillmentRepo:    fulfillmentRepo,
		fulfillmentService: fulfillmentService,
		repRepo:            repRepo,
		logger:             logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder creates an order with its initial fulfillment. The order row,
// the fulfillment, its items and the derived total are written in a single
// transaction, so an order with zero fulfillments or a stale total is never
// observable.
func (s *orderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderWithFulfillments, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rep, err := s.repRepo.GetByID(ctx, req.RepID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify rep: %w", err)
	}
	if rep == nil {
		s.logger.Warn().Str("rep_id", req.RepID).Msg("order references unknown rep")
		return nil, model.NewNotFoundError("Rep", req.RepID)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := model.Order{
		ID:         newID("ord"),
		RepID:      req.RepID,
		Status:     model.OrderStatusPending,
		TotalCents: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.orderRepo.Create(ctx, tx, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	fulfillment, ferr := s.fulfillmentService.CreateFulfillment(ctx, tx, order.ID, &req.Fulfillment)
	if ferr != nil {
		err = ferr
		return nil, err
	}

	order.TotalCents = model.TotalCentsOf(fulfillment.Items)
	if err = s.orderRepo.UpdateTotal(ctx, tx, order.ID, order.TotalCents); err != nil {
		return nil, fmt.Errorf("failed to set order total: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("rep_id", order.RepID).
		Int64("total_cents", order.TotalCents).
		Msg("order created")

	return &model.OrderWithFulfillments{
		Order:        order,
		Fulfillments: []model.FulfillmentWithItems{*fulfillment},
	}, nil
}

// AddFulfillment creates an additional fulfillment under an existing order
// and recomputes the order total from scratch across all of the order's
// items. The full recompute is deliberate: it keeps the total self-healing
// against prior drift at the cost of one extra read. Concurrent
// AddFulfillment calls against the same order remain a read-then-write race
// under the default isolation level.
func (s *orderService) AddFulfillment(ctx context.Context, orderID string, req *model.FulfillmentRequest) (*model.OrderWithFulfillments, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.NewNotFoundError("Order", orderID)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add fulfillment: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	fulfillment, ferr := s.fulfillmentService.CreateFulfillment(ctx, tx, orderID, req)
	if ferr != nil {
		err = ferr
		return nil, err
	}

	allItems, ierr := s.fulfillmentRepo.GetItemsByOrderID(ctx, tx, orderID)
	if ierr != nil {
		err = fmt.Errorf("failed to read order items: %w", ierr)
		return nil, err
	}

	newTotal := model.TotalCentsOf(allItems)
	if err = s.orderRepo.UpdateTotal(ctx, tx, orderID, newTotal); err != nil {
		return nil, fmt.Errorf("failed to update order total: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to add fulfillment: %w", err)
	}

	s.logger.Info().
		Str("order_id", orderID).
		Str("fulfillment_id", fulfillment.ID).
		Int64("total_cents", newTotal).
		Msg("fulfillment added to order")

	return s.GetOrderWithFulfillments(ctx, orderID)
}

// GetOrderWithFulfillments retrieves the order with every associated
// fulfillment and its items, ordered by fulfillment creation time.
func (s *orderService) GetOrderWithFulfillments(ctx context.Context, id string) (*model.OrderWithFulfillments, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.NewNotFoundError("Order", id)
	}

	fulfillments, err := s.fulfillmentService.GetByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order fulfillments: %w", err)
	}

	return &model.OrderWithFulfillments{Order: *order, Fulfillments: fulfillments}, nil
}

// ListOrders retrieves every order with its rep's display name, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]model.OrderWithRep, error) {
	orders, err := s.orderRepo.GetAllWithReps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
