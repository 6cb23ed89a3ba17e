package weather

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/gateway/api"
	"go-widget/internal/domain/model/external"
	"go-widget/pkg/log"

	"go.uber.org/zap"
)

const defaultIconBaseURL = "https://openweathermap.org/img/wn/"

type weatherUseCase struct {
	apiGateway  api.WeatherGateway
	iconBaseURL string
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, iconBaseURL string) UseCase {
	if iconBaseURL == "" {
		iconBaseURL = defaultIconBaseURL
	}
	if !strings.HasSuffix(iconBaseURL, "/") {
		iconBaseURL += "/"
	}
	return &weatherUseCase{
		apiGateway:  apiGateway,
		iconBaseURL: iconBaseURL,
	}
}

// ByCoordinates fetches weather and forecast for a latitude/longitude pair
func (uc *weatherUseCase) ByCoordinates(ctx context.Context, coords entity.Coordinates) (*entity.WeatherSnapshot, error) {
	current, err := uc.apiGateway.CurrentByCoordinates(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	forecast, err := uc.apiGateway.ForecastByCoordinates(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return uc.convert(current, forecast), nil
}

// ByPlace fetches weather and forecast for a place name
func (uc *weatherUseCase) ByPlace(ctx context.Context, place string) (*entity.WeatherSnapshot, error) {
	current, err := uc.apiGateway.CurrentByPlace(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	forecast, err := uc.apiGateway.ForecastByPlace(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return uc.convert(current, forecast), nil
}

// convert maps the provider responses to a snapshot; the forecast list keeps the provider's order
func (uc *weatherUseCase) convert(current *external.CurrentWeatherResponse, forecast *external.ForecastResponse) *entity.WeatherSnapshot {
	condition := firstCondition(current.Weather)

	snapshot := &entity.WeatherSnapshot{
		City:    current.Name,
		Country: current.Sys.Country,
		Coordinates: entity.Coordinates{
			Latitude:  current.Coord.Lat,
			Longitude: current.Coord.Lon,
		},
		TemperatureCelsius: RoundHalfUp(current.Main.Temp),
		Humidity:           RoundHalfUp(current.Main.Humidity),
		VisibilityKm:       RoundHalfUp(current.Visibility / 1000),
		WindSpeed:          RoundHalfUp(current.Wind.Speed),
		ConditionMain:      condition.Main,
		Description:        condition.Description,
		ConditionIcon:      condition.Icon,
		Forecast:           make([]entity.ForecastEntry, 0, len(forecast.List)),
	}
	if condition.Icon != "" {
		snapshot.IconURL = uc.iconBaseURL + condition.Icon + ".png"
	}

	for _, item := range forecast.List {
		itemCondition := firstCondition(item.Weather)
		snapshot.Forecast = append(snapshot.Forecast, entity.ForecastEntry{
			Timestamp:     time.Unix(item.Dt, 0).UTC(),
			DateText:      item.DtTxt,
			Temperature:   item.Main.Temp,
			FeelsLike:     item.Main.FeelsLike,
			Humidity:      item.Main.Humidity,
			ConditionMain: itemCondition.Main,
			Description:   itemCondition.Description,
			ConditionIcon: itemCondition.Icon,
		})
	}

	log.Info("Weather updated",
		zap.Int("temperature", snapshot.TemperatureCelsius),
		zap.String("weather_main", snapshot.ConditionMain),
		zap.String("city", snapshot.City),
		zap.String("country", snapshot.Country),
		zap.Int("humidity", snapshot.Humidity),
		zap.Int("wind_speed", snapshot.WindSpeed),
		zap.Int("forecast_entries", len(snapshot.Forecast)))

	return snapshot
}

func firstCondition(conditions []external.ConditionDTO) external.ConditionDTO {
	if len(conditions) == 0 {
		return external.ConditionDTO{}
	}
	return conditions[0]
}

// RoundHalfUp rounds to the nearest integer with halves going towards +Inf (2.5 -> 3, -2.5 -> -2).
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
