package impl

import (
	"context"
	"testing"
	"time"

	"farmkitchen/config"
	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	mockRepo "farmkitchen/internal/mocks/repository"
	mockSvc "farmkitchen/internal/mocks/service"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	cache       *mockSvc.MockCache
}

func newAdminServiceForTest(t *testing.T) (usecase.AdminUseCase, *adminServiceMocks) {
	t.Helper()

	m := &adminServiceMocks{
		userRepo:    mockRepo.NewMockUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		cache:       mockSvc.NewMockCache(t),
	}
	service := NewAdminService(AdminServiceParams{
		UserRepo:    m.userRepo,
		ProductRepo: m.productRepo,
		OrderRepo:   m.orderRepo,
		Cache:       m.cache,
		Config:      &config.Config{},
		Logger:      testLogger(),
	})

	return service, m
}

func TestAdminService_Stats_CountersAddUp(t *testing.T) {
	service, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.cache.On("GetJSON", ctx, "admin:stats", mock.Anything).Return(false, nil)
	m.userRepo.On("Count", ctx).Return(int64(10), nil)
	m.userRepo.On("CountByRole", ctx, entity.RoleAdmin).Return(int64(1), nil)
	m.userRepo.On("CountByRole", ctx, entity.RoleFarmer).Return(int64(3), nil)
	m.productRepo.On("Count", ctx).Return(int64(25), nil)
	m.orderRepo.On("Count", ctx).Return(int64(40), nil)
	m.orderRepo.On("SumRevenue", ctx, entity.RevenueStatuses()).Return(5250.5, nil)
	m.cache.On("SetJSON", ctx, "admin:stats", mock.Anything, time.Minute).Return(nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalAdmins)
	assert.Equal(t, int64(3), stats.TotalFarmers)
	assert.Equal(t, int64(6), stats.TotalConsumers)
	assert.Equal(t, stats.TotalUsers, stats.TotalAdmins+stats.TotalFarmers+stats.TotalConsumers)
	assert.Equal(t, int64(25), stats.TotalProducts)
	assert.Equal(t, int64(40), stats.TotalOrders)
	assert.InDelta(t, 5250.5, stats.TotalRevenue, 1e-9)
}

func TestAdminService_Stats_CacheHitSkipsRepositories(t *testing.T) {
	service, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.cache.On("GetJSON", ctx, "admin:stats", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*usecase.PlatformStats)
			dest.TotalUsers = 7
			dest.TotalOrders = 3
		}).
		Return(true, nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalOrders)
	m.userRepo.AssertNotCalled(t, "Count", mock.Anything)
}

func TestAdminService_Stats_CacheFailureIsAMiss(t *testing.T) {
	service, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.cache.On("GetJSON", ctx, "admin:stats", mock.Anything).Return(false, assert.AnError)
	m.userRepo.On("Count", ctx).Return(int64(2), nil)
	m.userRepo.On("CountByRole", ctx, entity.RoleAdmin).Return(int64(1), nil)
	m.userRepo.On("CountByRole", ctx, entity.RoleFarmer).Return(int64(0), nil)
	m.productRepo.On("Count", ctx).Return(int64(0), nil)
	m.orderRepo.On("Count", ctx).Return(int64(0), nil)
	m.orderRepo.On("SumRevenue", ctx, entity.RevenueStatuses()).Return(0.0, nil)
	m.cache.On("SetJSON", ctx, "admin:stats", mock.Anything, time.Minute).Return(assert.AnError)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
}

func TestAdminService_Analytics_IncludesTotalsAndSeries(t *testing.T) {
	service, m := newAdminServiceForTest(t)
	ctx := context.Background()

	series := []repository.DailyOrderCount{{Date: "2026-08-28", Count: 4}, {Date: "2026-08-29", Count: 2}}
	ranking := []repository.ProductSales{{Name: "Tomatoes", Sold: 120}, {Name: "Honey", Sold: 45}}

	m.cache.On("GetJSON", ctx, "admin:analytics", mock.Anything).Return(false, nil)
	m.userRepo.On("Count", ctx).Return(int64(20), nil)
	m.userRepo.On("CountByRole", ctx, entity.RoleAdmin).Return(int64(2), nil)
	m.userRepo.On("CountByRole", ctx, entity.RoleFarmer).Return(int64(5), nil)
	m.productRepo.On("Count", ctx).Return(int64(30), nil)
	m.orderRepo.On("Count", ctx).Return(int64(60), nil)
	m.orderRepo.On("SumRevenue", ctx, entity.RevenueStatuses()).Return(999.0, nil)
	m.orderRepo.On("CountPerDay", ctx, mock.AnythingOfType("time.Time")).Return(series, nil)
	m.orderRepo.On("TopProducts", ctx, 5).Return(ranking, nil)
	m.cache.On("SetJSON", ctx, "admin:analytics", mock.Anything, time.Minute).Return(nil)

	analytics, err := service.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(13), analytics.Totals.Consumers)
	assert.Equal(t, series, analytics.OrdersLast30)
	assert.Equal(t, ranking, analytics.TopProducts)
}

func TestAdminService_UpdateUserRole_InvalidRole(t *testing.T) {
	service, _ := newAdminServiceForTest(t)

	user, err := service.UpdateUserRole(context.Background(), uuid.New(), entity.Role("superuser"))
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAdminService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	service, _ := newAdminServiceForTest(t)

	order, err := service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("archived"))
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAdminService_ListOrders_ClampsPaging(t *testing.T) {
	service, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.orderRepo.On("ListPaged", ctx, mock.MatchedBy(func(filter *repository.OrderListFilter) bool {
		return filter.Page == 1 && filter.Limit == 10
	})).Return([]*entity.Order{}, int64(0), nil)

	paged, err := service.ListOrders(ctx, &repository.OrderListFilter{Page: -3, Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), paged.Total)
	assert.Empty(t, paged.Items)
}

func TestAdminService_DeleteOrder_ReturnsLastState(t *testing.T) {
	service, m := newAdminServiceForTest(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, TotalAmount: 120}
	m.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	m.orderRepo.On("Delete", ctx, order.ID).Return(nil)

	deleted, err := service.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Same(t, order, deleted)
}
