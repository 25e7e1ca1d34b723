package repository

import (
	"context"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t mockConstructorTestingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ListPaged(ctx context.Context, query string, page, limit int) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, query, page, limit)
	var products []*entity.Product
	if v, ok := args.Get(0).([]*entity.Product); ok {
		products = v
	}

	return products, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	args := m.Called(ctx, id, quantity)

	return args.Bool(0), args.Error(1)
}
