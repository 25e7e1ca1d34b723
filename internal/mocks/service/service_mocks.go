// Package service contains hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"time"

	"farmkitchen/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// mockConstructorTestingT is the subset of *testing.T the mock constructors need.
type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockIdentityVerifier mocks service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

func NewMockIdentityVerifier(t mockConstructorTestingT) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityClaims, error) {
	args := m.Called(ctx, idToken)
	if claims, ok := args.Get(0).(*service.IdentityClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockPaymentGateway mocks service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func NewMockPaymentGateway(t mockConstructorTestingT) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*service.PaymentOrder, error) {
	args := m.Called(ctx, amount, currency, receipt)
	if order, ok := args.Get(0).(*service.PaymentOrder); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockWeatherProvider mocks service.WeatherProvider.
type MockWeatherProvider struct {
	mock.Mock
}

func NewMockWeatherProvider(t mockConstructorTestingT) *MockWeatherProvider {
	m := &MockWeatherProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWeatherProvider) Current(ctx context.Context, lat, lon float64) (*service.WeatherReport, error) {
	args := m.Called(ctx, lat, lon)
	if report, ok := args.Get(0).(*service.WeatherReport); ok {
		return report, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCropAdvisor mocks service.CropAdvisor.
type MockCropAdvisor struct {
	mock.Mock
}

func NewMockCropAdvisor(t mockConstructorTestingT) *MockCropAdvisor {
	m := &MockCropAdvisor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCropAdvisor) Advise(ctx context.Context, advCtx *service.AdvisoryContext, question string, history []service.AdvisoryTurn) (string, error) {
	args := m.Called(ctx, advCtx, question, history)

	return args.String(0), args.Error(1)
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t mockConstructorTestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockCache mocks service.Cache.
type MockCache struct {
	mock.Mock
}

func NewMockCache(t mockConstructorTestingT) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)

	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
