package impl

import (
	"context"
	"testing"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	mockRepo "farmkitchen/internal/mocks/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Create_InheritsFarmerLocation(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{ProductRepo: mockProductRepo})

	ctx := context.Background()
	farmer := &entity.User{ID: uuid.New(), Role: entity.RoleFarmer, Location: orb.Point{77.59, 12.97}}

	mockProductRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.Create(ctx, farmer, &usecase.CreateProductInput{
		Name:  "Raw Honey",
		Price: 350,
		Stock: 12,
	})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, farmer.ID, product.FarmerID)
	assert.Equal(t, farmer.Location, product.Location)
}

func TestCatalogService_Create_ExplicitCoordinatesWin(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{ProductRepo: mockProductRepo})

	ctx := context.Background()
	farmer := &entity.User{ID: uuid.New(), Location: orb.Point{77.59, 12.97}}

	mockProductRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.Create(ctx, farmer, &usecase.CreateProductInput{
		Name:        "Millet",
		Price:       80,
		Stock:       40,
		Coordinates: []float64{76.27, 9.93},
	})
	require.NoError(t, err)
	assert.Equal(t, orb.Point{76.27, 9.93}, product.Location)
}

func TestCatalogService_Create_MalformedCoordinates(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{ProductRepo: mockProductRepo})

	product, err := service.Create(context.Background(), &entity.User{ID: uuid.New()}, &usecase.CreateProductInput{
		Name:        "Millet",
		Price:       80,
		Coordinates: []float64{76.27},
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCatalogService_Update_NonOwnerForbidden(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{ProductRepo: mockProductRepo})

	ctx := context.Background()
	owner := uuid.New()
	intruder := &entity.User{ID: uuid.New(), Role: entity.RoleFarmer}
	product := &entity.Product{ID: uuid.New(), FarmerID: owner, Name: "Ghee", Price: 600}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	newPrice := 450.0
	updated, err := service.Update(ctx, intruder, product.ID, &usecase.UpdateProductInput{Price: &newPrice})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	mockProductRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_Update_RejectsNonPositivePrice(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{ProductRepo: mockProductRepo})

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	product := &entity.Product{ID: uuid.New(), FarmerID: owner.ID, Name: "Ghee", Price: 600}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	badPrice := 0.0
	updated, err := service.Update(ctx, owner, product.ID, &usecase.UpdateProductInput{Price: &badPrice})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCatalogService_Delete_NonOwnerForbidden(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{ProductRepo: mockProductRepo})

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), FarmerID: uuid.New()}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	err := service.Delete(ctx, &entity.User{ID: uuid.New()}, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	mockProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
