package service

import (
	"context"
	"time"
)

// WeatherReport is the reshaped current-conditions result for one location.
type WeatherReport struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	Conditions  string    `json:"weather"`
	WindSpeed   float64   `json:"wind_speed"`
	CloudCover  int       `json:"cloud_cover"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
}

// WeatherProvider fetches current conditions from the external weather API.
type WeatherProvider interface {
	// Current looks up conditions at the given coordinates.
	Current(ctx context.Context, lat, lon float64) (*WeatherReport, error)
}
