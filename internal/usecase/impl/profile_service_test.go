package impl

import (
	"context"
	"testing"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	mockRepo "farmkitchen/internal/mocks/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Update_AppliesPartialFields(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	profile := NewProfileService(ProfileServiceParams{UserRepo: mockUserRepo, OrderRepo: mockOrderRepo})

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Old Name", Address: "Old Lane 1", Avatar: "old.png"}

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, user).Return(nil)

	newName := "New Name"
	updated, err := profile.Update(ctx, user.ID, &usecase.UpdateProfileInput{
		Name:        &newName,
		Coordinates: []float64{75.78, 26.92},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Old Lane 1", updated.Address)
	assert.Equal(t, "old.png", updated.Avatar)
	assert.Equal(t, orb.Point{75.78, 26.92}, updated.Location)
}

func TestProfileService_Update_MalformedCoordinates(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	profile := NewProfileService(ProfileServiceParams{UserRepo: mockUserRepo, OrderRepo: mockOrderRepo})

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	updated, err := profile.Update(ctx, user.ID, &usecase.UpdateProfileInput{
		Coordinates: []float64{75.78, 26.92, 431.0},
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_Get_UnknownUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	profile := NewProfileService(ProfileServiceParams{UserRepo: mockUserRepo, OrderRepo: mockOrderRepo})

	ctx := context.Background()
	userID := uuid.New()
	mockUserRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := profile.Get(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_Orders_PassesThrough(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	profile := NewProfileService(ProfileServiceParams{UserRepo: mockUserRepo, OrderRepo: mockOrderRepo})

	ctx := context.Background()
	consumerID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), ConsumerID: consumerID, Status: entity.OrderStatusDelivered}}
	mockOrderRepo.On("ListByConsumer", ctx, consumerID).Return(orders, nil)

	got, err := profile.Orders(ctx, consumerID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
