package impl

import (
	"context"
	"log/slog"
	"time"

	"farmkitchen/config"
	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	statsCacheKey     = "admin:stats"
	analyticsCacheKey = "admin:analytics"

	defaultStatsTTL = time.Minute

	analyticsWindowDays = 30
	topProductsLimit    = 5
)

type adminService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cache       service.Cache
	config      *config.Config
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Cache       service.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUseCase {
	return &adminService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		cache:       params.Cache,
		config:      params.Config,
		logger:      params.Logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	users, err := s.userRepo.List(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Invalid role value")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	return user, nil
}

func (s *adminService) ListProducts(ctx context.Context, query string, page, limit int) (*usecase.PagedProducts, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	items, total, err := s.productRepo.ListPaged(ctx, query, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products paged")
	}

	return &usecase.PagedProducts{Total: total, Items: items}, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}

	return product, nil
}

func (s *adminService) ListOrders(ctx context.Context, filter *repository.OrderListFilter) (*usecase.PagedOrders, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	orders, total, err := s.orderRepo.ListPaged(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders paged")
	}

	return &usecase.PagedOrders{Total: total, Items: orders}, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Invalid status value")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	return order, nil
}

func (s *adminService) DeleteOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return nil, errors.Wrap(err, "failed to delete order")
	}

	return order, nil
}

// Stats computes the dashboard headline counters, cached for a short TTL.
// Consumers are derived by subtraction, so the counters always sum up.
func (s *adminService) Stats(ctx context.Context) (*usecase.PlatformStats, error) {
	var cached usecase.PlatformStats
	if hit := s.cacheGet(ctx, statsCacheKey, &cached); hit {
		return &cached, nil
	}

	totals, err := s.computeTotals(ctx)
	if err != nil {
		return nil, err
	}

	stats := &usecase.PlatformStats{
		TotalUsers:     totals.Users,
		TotalAdmins:    totals.Admins,
		TotalFarmers:   totals.Farmers,
		TotalConsumers: totals.Consumers,
		TotalProducts:  totals.Products,
		TotalOrders:    totals.Orders,
		TotalRevenue:   totals.Revenue,
	}

	s.cacheSet(ctx, statsCacheKey, stats)

	return stats, nil
}

func (s *adminService) computeTotals(ctx context.Context) (*usecase.PlatformTotals, error) {
	totals := &usecase.PlatformTotals{}

	var err error
	if totals.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if totals.Admins, err = s.userRepo.CountByRole(ctx, entity.RoleAdmin); err != nil {
		return nil, errors.Wrap(err, "failed to count admins")
	}
	if totals.Farmers, err = s.userRepo.CountByRole(ctx, entity.RoleFarmer); err != nil {
		return nil, errors.Wrap(err, "failed to count farmers")
	}
	totals.Consumers = totals.Users - totals.Admins - totals.Farmers

	if totals.Products, err = s.productRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if totals.Orders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}
	if totals.Revenue, err = s.orderRepo.SumRevenue(ctx, entity.RevenueStatuses()); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	return totals, nil
}

// Analytics computes the dashboard chart data, cached for a short TTL.
func (s *adminService) Analytics(ctx context.Context) (*usecase.PlatformAnalytics, error) {
	var cached usecase.PlatformAnalytics
	if hit := s.cacheGet(ctx, analyticsCacheKey, &cached); hit {
		return &cached, nil
	}

	totals, err := s.computeTotals(ctx)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -(analyticsWindowDays - 1))
	ordersPerDay, err := s.orderRepo.CountPerDay(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders per day")
	}

	topProducts, err := s.orderRepo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank top products")
	}

	analytics := &usecase.PlatformAnalytics{
		Totals:       *totals,
		OrdersLast30: ordersPerDay,
		TopProducts:  topProducts,
	}

	s.cacheSet(ctx, analyticsCacheKey, analytics)

	return analytics, nil
}

// cacheGet reads a cached aggregate. Cache failures are logged and treated
// as misses.
func (s *adminService) cacheGet(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read admin cache",
			slog.String("key", key),
			slog.Any("error", err))

		return false
	}

	return hit
}

// cacheSet stores a cached aggregate, best effort.
func (s *adminService) cacheSet(ctx context.Context, key string, value any) {
	ttl := defaultStatsTTL
	if s.config.Redis != nil && s.config.Redis.StatsTTL > 0 {
		ttl = s.config.Redis.StatsTTL
	}

	if err := s.cache.SetJSON(ctx, key, value, ttl); err != nil {
		s.logger.WarnContext(ctx, "failed to write admin cache",
			slog.String("key", key),
			slog.Any("error", err))
	}
}
