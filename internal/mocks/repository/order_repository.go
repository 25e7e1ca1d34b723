package repository

import (
	"context"
	"time"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t mockConstructorTestingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, consumerID)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListPaged(ctx context.Context, filter *repository.OrderListFilter) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, filter)
	var orders []*entity.Order
	if v, ok := args.Get(0).([]*entity.Order); ok {
		orders = v
	}

	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (float64, error) {
	args := m.Called(ctx, statuses)

	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) CountPerDay(ctx context.Context, since time.Time) ([]repository.DailyOrderCount, error) {
	args := m.Called(ctx, since)
	if counts, ok := args.Get(0).([]repository.DailyOrderCount); ok {
		return counts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) TopProducts(ctx context.Context, limit int) ([]repository.ProductSales, error) {
	args := m.Called(ctx, limit)
	if sales, ok := args.Get(0).([]repository.ProductSales); ok {
		return sales, args.Error(1)
	}

	return nil, args.Error(1)
}
