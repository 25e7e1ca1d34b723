package impl

import (
	"context"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/usecase"

	"go.uber.org/fx"
)

type weatherService struct {
	provider service.WeatherProvider
}

// WeatherServiceParams holds dependencies for WeatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	Provider service.WeatherProvider
}

// NewWeatherService creates a new weather service instance
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUseCase {
	return &weatherService{
		provider: params.Provider,
	}
}

func (s *weatherService) CurrentForUser(ctx context.Context, user *entity.User) (*service.WeatherReport, error) {
	if !user.HasLocation() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("No coordinates on profile, please set your farm location")
	}

	report, err := s.provider.Current(ctx, user.Location.Lat(), user.Location.Lon())
	if err != nil {
		return nil, err
	}

	return report, nil
}
