package repository

import (
	"context"
	"errors"
	"time"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderListFilter narrows the admin order listing.
type OrderListFilter struct {
	Query  string // Free-text match against order id or buyer name/email.
	Status *entity.OrderStatus
	Page   int
	Limit  int
}

// DailyOrderCount is one calendar-day bucket of the order time series.
// Days without orders are simply absent.
type DailyOrderCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ProductSales is one row of the best-seller ranking.
type ProductSales struct {
	Name string `json:"name"`
	Sold int64  `json:"sold"`
}

// OrderRepository defines the standard operations for order persistence and
// the read-only aggregations used by admin analytics.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByConsumer retrieves the account's orders newest-first with line
	// items expanded to current product data.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error)

	// ListPaged retrieves one page of orders newest-first with buyer and
	// product names expanded, plus the total match count.
	ListPaged(ctx context.Context, filter *OrderListFilter) ([]*entity.Order, int64, error)

	// UpdateStatus sets the order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// SumRevenue totals the order amounts across the given statuses.
	SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (float64, error)

	// CountPerDay buckets orders created since the given time by calendar day.
	CountPerDay(ctx context.Context, since time.Time) ([]DailyOrderCount, error)

	// TopProducts ranks listings by total quantity sold across all orders.
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}
