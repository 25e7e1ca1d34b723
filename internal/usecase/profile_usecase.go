package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
)

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the stored value untouched.
type UpdateProfileInput struct {
	Name        *string   `json:"name"`
	Address     *string   `json:"address"`
	Avatar      *string   `json:"avatar"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// ProfileUseCase serves the signed-in account's own profile and history.
type ProfileUseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// Orders lists the account's own orders, newest first.
	Orders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
