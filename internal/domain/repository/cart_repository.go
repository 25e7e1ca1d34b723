package repository

import (
	"context"
	"errors"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound is returned when an account has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart has no line for the product.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the standard operations for basket persistence.
// All reads expand item lines with current product data.
type CartRepository interface {
	// FindByUser retrieves the account's cart with items expanded.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart for the account.
	Create(ctx context.Context, cart *entity.Cart) error

	// InsertItem appends a new line to the cart.
	InsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// UpdateItemQuantity sets the quantity of an existing line.
	UpdateItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// DeleteItem removes one line from the cart.
	DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error

	// ClearItems removes every line from the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
