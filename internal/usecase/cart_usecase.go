package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
)

// CartUseCase manages the consumer's single cart. Stock checks here are
// advisory; the authoritative check happens at order placement.
type CartUseCase interface {
	// Get returns the caller's cart, creating an empty one on first use.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem adds the product to the cart, or increments the existing
	// line. The requested quantity alone is checked against current stock.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateItemQuantity sets the line's quantity. Quantity must be at
	// least one; removal goes through RemoveItem.
	UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveItem deletes the product's line from the cart.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)

	// Clear removes every line from the cart.
	Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
