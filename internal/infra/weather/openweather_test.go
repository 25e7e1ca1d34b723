package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmkitchen/config"
	domainerrors "farmkitchen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderForTest(t *testing.T, baseURL string) *openWeatherProvider {
	t.Helper()

	provider, err := NewOpenWeatherProvider(Params{
		Config: &config.Config{
			OpenWeather: &config.OpenWeatherConfig{APIKey: "test-key", BaseURL: baseURL},
		},
	})
	require.NoError(t, err)

	return provider.(*openWeatherProvider)
}

func TestOpenWeatherProvider_Current_ReshapesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("appid"))
		assert.Equal(t, "metric", query.Get("units"))
		assert.NotEmpty(t, query.Get("lat"))
		assert.NotEmpty(t, query.Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Pune",
			"main": {"temp": 27.4, "feels_like": 29.1, "humidity": 64},
			"weather": [{"description": "scattered clouds"}],
			"wind": {"speed": 3.6},
			"clouds": {"all": 40},
			"sys": {"sunrise": 1756434980, "sunset": 1756480312}
		}`))
	}))
	defer server.Close()

	provider := newProviderForTest(t, server.URL)

	report, err := provider.Current(context.Background(), 18.52, 73.85)
	require.NoError(t, err)
	assert.Equal(t, "Pune", report.Location)
	assert.InDelta(t, 27.4, report.Temperature, 1e-9)
	assert.InDelta(t, 29.1, report.FeelsLike, 1e-9)
	assert.Equal(t, 64, report.Humidity)
	assert.Equal(t, "scattered clouds", report.Conditions)
	assert.InDelta(t, 3.6, report.WindSpeed, 1e-9)
	assert.Equal(t, 40, report.CloudCover)
	assert.Equal(t, time.Unix(1756434980, 0).UTC(), report.Sunrise)
}

func TestOpenWeatherProvider_Current_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := newProviderForTest(t, server.URL)

	report, err := provider.Current(context.Background(), 18.52, 73.85)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}

func TestNewOpenWeatherProvider_MissingConfig(t *testing.T) {
	provider, err := NewOpenWeatherProvider(Params{Config: &config.Config{}})
	require.Error(t, err)
	assert.Nil(t, provider)
}
