package repository

import (
	"context"

	"farmkitchen/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// StubTransactionManager runs the transactional function directly against a
// fixed factory, with no real transaction underneath.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t mockConstructorTestingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	return m.Called().Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	return m.Called().Get(0).(repository.OrderRepository)
}

func (m *MockRepositoryFactory) CartRepo() repository.CartRepository {
	return m.Called().Get(0).(repository.CartRepository)
}
