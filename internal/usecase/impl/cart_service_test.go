package impl

import (
	"context"
	"testing"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	mockRepo "farmkitchen/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_Get_CreatesCartOnFirstAccess(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{CartRepo: mockCartRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.On("FindByUser", ctx, userID).Return(nil, repository.ErrCartNotFound).Once()
	mockCartRepo.On("Create", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := service.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{CartRepo: mockCartRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Eggs", Price: 8, Stock: 30}
	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []*entity.CartItem{{ID: uuid.New(), ProductID: product.ID, Quantity: 2}},
	}

	mockCartRepo.On("FindByUser", ctx, userID).Return(cart, nil)
	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockCartRepo.On("UpdateItemQuantity", ctx, cart.ID, product.ID, 5).Return(nil)

	result, err := service.AddItem(ctx, userID, product.ID, 3)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{CartRepo: mockCartRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Saffron", Price: 900, Stock: 2}
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	mockCartRepo.On("FindByUser", ctx, userID).Return(cart, nil)
	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.AddItem(ctx, userID, product.ID, 3)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Only 2 left in stock")
	mockCartRepo.AssertNotCalled(t, "InsertItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateItemQuantity_ItemNotInCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{CartRepo: mockCartRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Apples", Price: 12, Stock: 50}
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockCartRepo.On("FindByUser", ctx, userID).Return(cart, nil)

	result, err := service.UpdateItemQuantity(ctx, userID, product.ID, 4)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_UpdateItemQuantity_ExceedsStock(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{CartRepo: mockCartRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Basil", Price: 15, Stock: 4}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.UpdateItemQuantity(ctx, userID, product.ID, 9)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Only 4 left in stock")
}

func TestCartService_RemoveItem_ReloadsCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{CartRepo: mockCartRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	mockCartRepo.On("FindByUser", ctx, userID).Return(cart, nil)
	mockCartRepo.On("DeleteItem", ctx, cart.ID, productID).Return(nil)

	result, err := service.RemoveItem(ctx, userID, productID)
	require.NoError(t, err)
	assert.NotNil(t, result)
}
