package impl

import (
	"context"
	"testing"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	mockRepo "farmkitchen/internal/mocks/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Submit_CreatesFirstReview(t *testing.T) {
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(ReviewServiceParams{ReviewRepo: mockReviewRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	consumer := &entity.User{ID: uuid.New(), Name: "Priya"}
	product := &entity.Product{ID: uuid.New(), Name: "Mangoes"}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockReviewRepo.On("FindByProductAndConsumer", ctx, product.ID, consumer.ID).
		Return(nil, repository.ErrReviewNotFound)
	mockReviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, created, err := service.Submit(ctx, consumer, product.ID, &usecase.SubmitReviewInput{Rating: 5, Comment: "Sweetest of the season"})
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.True(t, created)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Priya", review.ReviewerName)
}

func TestReviewService_Submit_OverwritesExistingReview(t *testing.T) {
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(ReviewServiceParams{ReviewRepo: mockReviewRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	consumer := &entity.User{ID: uuid.New(), Name: "Priya"}
	product := &entity.Product{ID: uuid.New(), Name: "Mangoes"}
	existing := &entity.Review{
		ID:         uuid.New(),
		ProductID:  product.ID,
		ConsumerID: consumer.ID,
		Rating:     5,
		Comment:    "Sweetest of the season",
		CreatedAt:  time.Now().Add(-24 * time.Hour),
	}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockReviewRepo.On("FindByProductAndConsumer", ctx, product.ID, consumer.ID).Return(existing, nil)
	mockReviewRepo.On("Update", ctx, existing).Return(nil)

	review, created, err := service.Submit(ctx, consumer, product.ID, &usecase.SubmitReviewInput{Rating: 2, Comment: "Second batch was overripe"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, review.ID)
	assert.Equal(t, 2, review.Rating)
	assert.Equal(t, "Second batch was overripe", review.Comment)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_Submit_UnknownProduct(t *testing.T) {
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(ReviewServiceParams{ReviewRepo: mockReviewRepo, ProductRepo: mockProductRepo})

	ctx := context.Background()
	productID := uuid.New()
	mockProductRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	review, created, err := service.Submit(ctx, &entity.User{ID: uuid.New()}, productID, &usecase.SubmitReviewInput{Rating: 4})
	require.Error(t, err)
	assert.Nil(t, review)
	assert.False(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_Submit_RatingOutOfRange(t *testing.T) {
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(ReviewServiceParams{ReviewRepo: mockReviewRepo, ProductRepo: mockProductRepo})

	for _, rating := range []int{0, 6, -1} {
		review, created, err := service.Submit(context.Background(), &entity.User{ID: uuid.New()}, uuid.New(), &usecase.SubmitReviewInput{Rating: rating})
		require.Error(t, err)
		assert.Nil(t, review)
		assert.False(t, created)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}
