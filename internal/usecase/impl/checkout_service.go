package impl

import (
	"context"
	"fmt"
	"time"

	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "INR"

type checkoutService struct {
	gateway service.PaymentGateway
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Gateway service.PaymentGateway
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUseCase {
	return &checkoutService{
		gateway: params.Gateway,
	}
}

func (s *checkoutService) CreateOrder(ctx context.Context, input *usecase.CheckoutInput) (*service.PaymentOrder, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Invalid amount")
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	receipt := input.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("order_rcptid_%d", time.Now().UnixMilli())
	}

	order, err := s.gateway.CreateOrder(ctx, input.Amount, currency, receipt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment order")
	}

	return order, nil
}
