package repository

import (
	"context"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMessageRepository mocks repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func NewMockMessageRepository(t mockConstructorTestingT) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	args := m.Called(ctx, userID)
	if messages, ok := args.Get(0).([]*entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) ListThread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.Message, error) {
	args := m.Called(ctx, userID, partnerID)
	if messages, ok := args.Get(0).([]*entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}
