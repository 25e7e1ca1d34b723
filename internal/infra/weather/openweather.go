// Package weather implements current-conditions lookups against OpenWeather.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"farmkitchen/config"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"

	requestTimeout = 10 * time.Second
)

type openWeatherProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Params holds dependencies for the OpenWeather provider, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// NewOpenWeatherProvider creates a weather provider backed by the OpenWeather
// current-conditions API.
func NewOpenWeatherProvider(params Params) (service.WeatherProvider, error) {
	cfg := params.Config.OpenWeather
	if cfg == nil {
		return nil, errors.New("openweather configuration is missing")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &openWeatherProvider{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// currentResponse mirrors the subset of the OpenWeather payload the
// marketplace reshapes for clients.
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// Current looks up conditions at the given coordinates in metric units.
func (p *openWeatherProvider) Current(ctx context.Context, lat, lon float64) (*service.WeatherReport, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	endpoint := fmt.Sprintf("%s/weather?%s", p.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build weather request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailure.WithDetails("Failed to fetch weather data")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.ErrUpstreamFailure.WithDetails("Failed to fetch weather data")
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerrors.ErrUpstreamFailure.WithDetails("Failed to fetch weather data")
	}

	report := &service.WeatherReport{
		Location:    payload.Name,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		CloudCover:  payload.Clouds.All,
		Sunrise:     time.Unix(payload.Sys.Sunrise, 0).UTC(),
		Sunset:      time.Unix(payload.Sys.Sunset, 0).UTC(),
	}
	if len(payload.Weather) > 0 {
		report.Conditions = payload.Weather[0].Description
	}

	return report, nil
}
