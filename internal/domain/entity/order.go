package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
// Transitions are admin- or payment-driven; no ordering is enforced beyond
// the allowed-value check.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus converts a string into an OrderStatus, reporting whether
// it names an allowed status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)

	return status, status.IsValid()
}

// RevenueStatuses are the order states that count toward realized revenue.
func RevenueStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPaid, OrderStatusDelivered}
}

// Order is the immutable-once-created record of a purchase. Line items capture
// the unit price at purchase time; the total always equals the sum of
// quantity × unit price over the items.
type Order struct {
	ID          uuid.UUID
	ConsumerID  uuid.UUID
	Items       []*OrderItem
	TotalAmount float64
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Consumer *User // Buying account, expanded by admin queries.
}

// OrderItem is one purchased line: the listing, its seller, and the price
// captured at the moment of purchase.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	FarmerID  uuid.UUID
	Quantity  int
	UnitPrice float64

	Product *Product // Current catalog data, expanded by history queries.
}
