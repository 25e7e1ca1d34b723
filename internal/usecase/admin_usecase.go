package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"
)

// PagedProducts is one page of the admin catalog listing.
type PagedProducts struct {
	Total int64
	Items []*entity.Product
}

// PagedOrders is one page of the admin order listing.
type PagedOrders struct {
	Total int64
	Items []*entity.Order
}

// PlatformStats is the admin dashboard headline counters.
type PlatformStats struct {
	TotalUsers     int64   `json:"totalUsers"`
	TotalFarmers   int64   `json:"totalFarmers"`
	TotalConsumers int64   `json:"totalConsumers"`
	TotalAdmins    int64   `json:"totalAdmins"`
	TotalProducts  int64   `json:"totalProducts"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// PlatformTotals is the counters block embedded in the analytics payload.
type PlatformTotals struct {
	Users     int64   `json:"users"`
	Admins    int64   `json:"admins"`
	Farmers   int64   `json:"farmers"`
	Consumers int64   `json:"consumers"`
	Products  int64   `json:"products"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// PlatformAnalytics is the admin dashboard chart data.
type PlatformAnalytics struct {
	Totals       PlatformTotals               `json:"totals"`
	OrdersLast30 []repository.DailyOrderCount `json:"ordersLast30"`
	TopProducts  []repository.ProductSales    `json:"topProducts"`
}

// AdminUseCase is the platform back office: user, catalog and order
// management plus dashboard aggregates.
type AdminUseCase interface {
	ListUsers(ctx context.Context, role *entity.Role) ([]*entity.User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error)

	ListProducts(ctx context.Context, query string, page, limit int) (*PagedProducts, error)

	// DeleteProduct removes the listing and returns its last state.
	DeleteProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	ListOrders(ctx context.Context, filter *repository.OrderListFilter) (*PagedOrders, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes the order and returns its last state.
	DeleteOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	Stats(ctx context.Context) (*PlatformStats, error)
	Analytics(ctx context.Context) (*PlatformAnalytics, error)
}
