package repository

import (
	"context"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func NewMockReviewRepository(t mockConstructorTestingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) FindByProductAndConsumer(ctx context.Context, productID, consumerID uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, productID, consumerID)
	if review, ok := args.Get(0).(*entity.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, productID)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}
