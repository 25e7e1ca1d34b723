package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table.
// Each account holds at most one cart.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// A cart holds at most one line per product.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
