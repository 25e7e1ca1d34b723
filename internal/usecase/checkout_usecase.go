package usecase

import (
	"context"

	"farmkitchen/internal/domain/service"
)

// CheckoutInput is a payment-order creation request. Amount is in major
// currency units; currency and receipt are optional.
type CheckoutInput struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// CheckoutUseCase creates payment-provider orders for client-side checkout.
type CheckoutUseCase interface {
	CreateOrder(ctx context.Context, input *CheckoutInput) (*service.PaymentOrder, error)
}
