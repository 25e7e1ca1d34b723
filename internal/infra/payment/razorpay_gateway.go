// Package payment implements payment-order creation against Razorpay.
package payment

import (
	"context"
	"math"

	"farmkitchen/config"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/errors"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/fx"
)

type razorpayGateway struct {
	client *razorpay.Client
}

// Params holds dependencies for the Razorpay gateway, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// NewRazorpayGateway creates a payment gateway backed by Razorpay Orders.
func NewRazorpayGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Razorpay
	if cfg == nil {
		return nil, errors.New("razorpay configuration is missing")
	}

	return &razorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
	}, nil
}

// CreateOrder creates a provider order. Razorpay expects the amount in the
// currency's smallest unit, so major units are converted to paise here.
func (g *razorpayGateway) CreateOrder(_ context.Context, amount float64, currency, receipt string) (*service.PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("razorpay order creation failed")
	}

	order := &service.PaymentOrder{Currency: currency, Receipt: receipt}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if amountMinor, ok := body["amount"].(float64); ok {
		order.Amount = int64(amountMinor)
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}

	return order, nil
}
