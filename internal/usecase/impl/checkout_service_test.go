package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	mockSvc "farmkitchen/internal/mocks/service"
	"farmkitchen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_CreateOrder_Success(t *testing.T) {
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	checkout := NewCheckoutService(CheckoutServiceParams{Gateway: mockGateway})

	ctx := context.Background()
	want := &service.PaymentOrder{ID: "order_9A33XWu170gUtm", Amount: 49900, Currency: "INR", Status: "created"}
	mockGateway.On("CreateOrder", ctx, 499.0, "INR", "rcpt-77").Return(want, nil)

	order, err := checkout.CreateOrder(ctx, &usecase.CheckoutInput{Amount: 499, Currency: "INR", Receipt: "rcpt-77"})
	require.NoError(t, err)
	assert.Same(t, want, order)
}

func TestCheckoutService_CreateOrder_DefaultsCurrencyAndReceipt(t *testing.T) {
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	checkout := NewCheckoutService(CheckoutServiceParams{Gateway: mockGateway})

	ctx := context.Background()
	mockGateway.On("CreateOrder", ctx, 120.0, "INR", mock.MatchedBy(func(receipt string) bool {
		return strings.HasPrefix(receipt, "order_rcptid_")
	})).Return(&service.PaymentOrder{ID: "order_1", Amount: 12000, Currency: "INR"}, nil)

	order, err := checkout.CreateOrder(ctx, &usecase.CheckoutInput{Amount: 120})
	require.NoError(t, err)
	assert.Equal(t, "INR", order.Currency)
}

func TestCheckoutService_CreateOrder_InvalidAmount(t *testing.T) {
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	checkout := NewCheckoutService(CheckoutServiceParams{Gateway: mockGateway})

	for _, amount := range []float64{0, -50} {
		order, err := checkout.CreateOrder(context.Background(), &usecase.CheckoutInput{Amount: amount})
		require.Error(t, err)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}
