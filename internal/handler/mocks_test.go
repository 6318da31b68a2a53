package handler

import (
	"context"

	"gift-fulfillment/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) ListReps(ctx context.Context) ([]model.Rep, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rep), args.Error(1)
}

func (m *MockCatalogService) GetRep(ctx context.Context, id string) (*model.Rep, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rep), args.Error(1)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderWithFulfillments, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderWithFulfillments), args.Error(1)
}

func (m *MockOrderService) AddFulfillment(ctx context.Context, orderID string, req *model.FulfillmentRequest) (*model.OrderWithFulfillments, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderWithFulfillments), args.Error(1)
}

func (m *MockOrderService) GetOrderWithFulfillments(ctx context.Context, id string) (*model.OrderWithFulfillments, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderWithFulfillments), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]model.OrderWithRep, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderWithRep), args.Error(1)
}

// MockFulfillmentService is a mock implementation of service.FulfillmentService.
type MockFulfillmentService struct {
	mock.Mock
}

func (m *MockFulfillmentService) CreateFulfillment(ctx context.Context, tx pgx.Tx, orderID string, req *model.FulfillmentRequest) (*model.FulfillmentWithItems, error) {
	args := m.Called(ctx, tx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FulfillmentWithItems), args.Error(1)
}

func (m *MockFulfillmentService) UpdateStatus(ctx context.Context, id string, status model.FulfillmentStatus) (*model.FulfillmentWithItems, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FulfillmentWithItems), args.Error(1)
}

func (m *MockFulfillmentService) GetByID(ctx context.Context, id string) (*model.FulfillmentWithItems, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FulfillmentWithItems), args.Error(1)
}

func (m *MockFulfillmentService) GetByOrderID(ctx context.Context, orderID string) ([]model.FulfillmentWithItems, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FulfillmentWithItems), args.Error(1)
}
