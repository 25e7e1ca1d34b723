package impl

import (
	"context"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUseCase {
	return &profileService{
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
	}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if len(input.Coordinates) != 0 {
		if len(input.Coordinates) != 2 {
			return nil, domainerrors.ErrInvalidInput.WithDetails("Coordinates must be [longitude, latitude]")
		}
		user.Location = orb.Point{input.Coordinates[0], input.Coordinates[1]}
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (s *profileService) Orders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByConsumer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by consumer")
	}

	return orders, nil
}
