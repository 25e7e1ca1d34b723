package repository

import (
	"context"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository(t mockConstructorTestingT) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *MockCartRepository) InsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	return m.Called(ctx, cartID, productID, quantity).Error(0)
}

func (m *MockCartRepository) UpdateItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	return m.Called(ctx, cartID, productID, quantity).Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error {
	return m.Called(ctx, cartID, productID).Error(0)
}

func (m *MockCartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return m.Called(ctx, cartID).Error(0)
}
