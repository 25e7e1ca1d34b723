package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a buyer's mutable basket. One cart per account, created lazily on
// first access. Stock checks against the cart are advisory only; nothing is
// reserved until an order is placed.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one (product, quantity) line. Quantity is always at least one;
// zero-quantity lines are removed rather than stored.
type CartItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int

	Product *Product // Current catalog data, expanded on every read.
}

// FindItem returns the line for the given product, or nil if absent.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item
		}
	}

	return nil
}
