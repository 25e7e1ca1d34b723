package usecase

import (
	"context"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/service"
)

// WeatherUseCase reports current conditions at the caller's stored location.
type WeatherUseCase interface {
	// CurrentForUser fails with ErrInvalidInput when the account has no
	// stored coordinates.
	CurrentForUser(ctx context.Context, user *entity.User) (*service.WeatherReport, error)
}
