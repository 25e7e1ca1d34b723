package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	mockRepo "farmkitchen/internal/mocks/repository"
	mockSvc "farmkitchen/internal/mocks/service"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderServiceForTest(t *testing.T, productRepo repository.ProductRepository, orderRepo repository.OrderRepository, publisher *mockSvc.MockEventPublisher) usecase.OrderUseCase {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProductRepo").Return(productRepo).Maybe()
	factory.On("OrderRepo").Return(orderRepo).Maybe()

	return NewOrderService(OrderServiceParams{
		TxManager: &mockRepo.StubTransactionManager{Factory: factory},
		Publisher: publisher,
		Logger:    testLogger(),
	})
}

func TestOrderService_Place_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := newOrderServiceForTest(t, mockProductRepo, mockOrderRepo, mockPublisher)

	ctx := context.Background()
	consumerID := uuid.New()
	farmerID := uuid.New()
	tomatoes := &entity.Product{ID: uuid.New(), FarmerID: farmerID, Name: "Tomatoes", Price: 40, Stock: 10}
	spinach := &entity.Product{ID: uuid.New(), FarmerID: farmerID, Name: "Spinach", Price: 25, Stock: 5}

	mockProductRepo.On("FindByID", ctx, tomatoes.ID).Return(tomatoes, nil)
	mockProductRepo.On("DecrementStock", ctx, tomatoes.ID, 3).Return(true, nil)
	mockProductRepo.On("FindByID", ctx, spinach.ID).Return(spinach, nil)
	mockProductRepo.On("DecrementStock", ctx, spinach.ID, 2).Return(true, nil)
	mockOrderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mockPublisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil)

	order, err := service.Place(ctx, consumerID, []usecase.OrderLineInput{
		{ProductID: tomatoes.ID, Quantity: 3},
		{ProductID: spinach.ID, Quantity: 2},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, consumerID, order.ConsumerID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 3*40.0+2*25.0, order.TotalAmount, 1e-9)
	assert.Equal(t, 40.0, order.Items[0].UnitPrice)
	assert.Equal(t, farmerID, order.Items[0].FarmerID)
}

func TestOrderService_Place_InsufficientStockRollsBack(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := newOrderServiceForTest(t, mockProductRepo, mockOrderRepo, mockPublisher)

	ctx := context.Background()
	plentiful := &entity.Product{ID: uuid.New(), Name: "Carrots", Price: 30, Stock: 100}
	scarce := &entity.Product{ID: uuid.New(), Name: "Honey", Price: 300, Stock: 1}

	mockProductRepo.On("FindByID", ctx, plentiful.ID).Return(plentiful, nil)
	mockProductRepo.On("DecrementStock", ctx, plentiful.ID, 2).Return(true, nil)
	mockProductRepo.On("FindByID", ctx, scarce.ID).Return(scarce, nil)
	mockProductRepo.On("DecrementStock", ctx, scarce.ID, 5).Return(false, nil)

	order, err := service.Place(ctx, uuid.New(), []usecase.OrderLineInput{
		{ProductID: plentiful.ID, Quantity: 2},
		{ProductID: scarce.ID, Quantity: 5},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Honey")
	mockOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestOrderService_Place_UnknownProduct(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := newOrderServiceForTest(t, mockProductRepo, mockOrderRepo, mockPublisher)

	ctx := context.Background()
	missingID := uuid.New()
	mockProductRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrProductNotFound)

	order, err := service.Place(ctx, uuid.New(), []usecase.OrderLineInput{
		{ProductID: missingID, Quantity: 1},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Contains(t, err.Error(), missingID.String())
}

func TestOrderService_Place_EmptyOrder(t *testing.T) {
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := newOrderServiceForTest(t, mockRepo.NewMockProductRepository(t), mockRepo.NewMockOrderRepository(t), mockPublisher)

	order, err := service.Place(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestOrderService_Place_PublishFailureDoesNotFailOrder(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := newOrderServiceForTest(t, mockProductRepo, mockOrderRepo, mockPublisher)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Milk", Price: 60, Stock: 8}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("DecrementStock", ctx, product.ID, 1).Return(true, nil)
	mockOrderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mockPublisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker unavailable"))

	order, err := service.Place(ctx, uuid.New(), []usecase.OrderLineInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.InDelta(t, 60.0, order.TotalAmount, 1e-9)
}
