package service

import "context"

// PaymentOrder is the provider-side order object created for a checkout.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // Amount in the currency's smallest unit.
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// PaymentGateway creates payment-provider orders. Settlement and webhooks are
// out of scope; this is order creation only.
type PaymentGateway interface {
	// CreateOrder creates a provider order for the given amount in major
	// currency units.
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*PaymentOrder, error)
}
