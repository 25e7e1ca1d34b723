// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is implemented by each serving transport (HTTP today).
type Delivery interface {
	Serve(ctx context.Context) error
}
