package api

import (
	"context"
	"fmt"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model/external"
)

// WeatherGateway defines the calls made to the weather provider
type WeatherGateway interface {
	// CurrentByCoordinates gets current conditions for a latitude/longitude pair
	CurrentByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error)

	// ForecastByCoordinates gets the forecast list for a latitude/longitude pair
	ForecastByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error)

	// CurrentByPlace gets current conditions for a place name such as "Paris" or "Paris,FR"
	CurrentByPlace(ctx context.Context, place string) (*external.CurrentWeatherResponse, error)

	// ForecastByPlace gets the forecast list for a place name
	ForecastByPlace(ctx context.Context, place string) (*external.ForecastResponse, error)
}

// LookupError means the provider has no match for the requested place or coordinate
type LookupError struct {
	Query      string
	StatusCode int
	Message    string
}

func (e *LookupError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("no weather data for %q (status %d)", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("no weather data for %q: %s", e.Query, e.Message)
}
