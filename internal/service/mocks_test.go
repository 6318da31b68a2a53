package service

import (
	"context"

	"gift-fulfillment/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockRepRepository is a mock implementation of RepRepository.
type MockRepRepository struct {
	mock.Mock
}

func (m *MockRepRepository) GetAll(ctx context.Context) ([]model.Rep, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rep), args.Error(1)
}

func (m *MockRepRepository) GetByID(ctx context.Context, id string) (*model.Rep, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rep), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateTotal(ctx context.Context, tx pgx.Tx, id string, totalCents int64) error {
	args := m.Called(ctx, tx, id, totalCents)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithReps(ctx context.Context) ([]model.OrderWithRep, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderWithRep), args.Error(1)
}

// MockFulfillmentRepository is a mock implementation of FulfillmentRepository.
type MockFulfillmentRepository struct {
	mock.Mock
}

func (m *MockFulfillmentRepository) Create(ctx context.Context, tx pgx.Tx, f *model.Fulfillment) error {
	args := m.Called(ctx, tx, f)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) CreateItems(ctx context.Context, tx pgx.Tx, items []model.FulfillmentItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) GetByID(ctx context.Context, id string) (*model.Fulfillment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fulfillment), args.Error(1)
}

func (m *MockFulfillmentRepository) GetByOrderID(ctx context.Context, orderID string) ([]model.Fulfillment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fulfillment), args.Error(1)
}

func (m *MockFulfillmentRepository) GetItemsByFulfillmentID(ctx context.Context, fulfillmentID string) ([]model.FulfillmentItem, error) {
	args := m.Called(ctx, fulfillmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FulfillmentItem), args.Error(1)
}

func (m *MockFulfillmentRepository) GetItemsByOrderID(ctx context.Context, tx pgx.Tx, orderID string) ([]model.FulfillmentItem, error) {
	args := m.Called(ctx, tx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FulfillmentItem), args.Error(1)
}

func (m *MockFulfillmentRepository) UpdateStatus(ctx context.Context, id string, status model.FulfillmentStatus) (*model.Fulfillment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fulfillment), args.Error(1)
}

// MockFulfillmentService is a mock implementation of FulfillmentService, used
// by order service tests.
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

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }
