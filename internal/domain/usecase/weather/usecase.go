package weather

import (
	"context"

	"go-widget/internal/domain/entity"
)

// UseCase fetches a current-conditions + forecast pair from the provider.
// Both calls are issued sequentially: current first, forecast second.
type UseCase interface {
	// ByCoordinates fetches weather and forecast for a latitude/longitude pair
	ByCoordinates(ctx context.Context, coords entity.Coordinates) (*entity.WeatherSnapshot, error)

	// ByPlace fetches weather and forecast for a place name such as "Paris" or "Paris,FR"
	ByPlace(ctx context.Context, place string) (*entity.WeatherSnapshot, error)
}
