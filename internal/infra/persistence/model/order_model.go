package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalAmount float64   `gorm:"type:decimal(12,2);not null"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Items    []*OrderItemModel `gorm:"foreignKey:OrderID"`
	Consumer *UserModel        `gorm:"foreignKey:ConsumerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// UnitPrice is the price captured at purchase time, not the current listing price.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	UnitPrice float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
