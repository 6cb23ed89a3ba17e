package weather

import (
	"context"
	"errors"
	"testing"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model/external"
)

type fakeGateway struct {
	calls      []string
	current    *external.CurrentWeatherResponse
	forecast   *external.ForecastResponse
	currentErr error
}

func (f *fakeGateway) CurrentByCoordinates(_ context.Context, _ entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	f.calls = append(f.calls, "current-coords")
	return f.current, f.currentErr
}

func (f *fakeGateway) ForecastByCoordinates(_ context.Context, _ entity.Coordinates) (*external.ForecastResponse, error) {
	f.calls = append(f.calls, "forecast-coords")
	return f.forecast, nil
}

func (f *fakeGateway) CurrentByPlace(_ context.Context, _ string) (*external.CurrentWeatherResponse, error) {
	f.calls = append(f.calls, "current-place")
	return f.current, f.currentErr
}

func (f *fakeGateway) ForecastByPlace(_ context.Context, _ string) (*external.ForecastResponse, error) {
	f.calls = append(f.calls, "forecast-place")
	return f.forecast, nil
}

func sampleGateway() *fakeGateway {
	return &fakeGateway{
		current: &external.CurrentWeatherResponse{
			Coord:      external.CoordDTO{Lat: 48.85, Lon: 2.35},
			Weather:    []external.ConditionDTO{{Main: "Rain", Description: "light rain", Icon: "10d"}},
			Main:       external.MainDTO{Temp: 22.5, Humidity: 81},
			Visibility: 9500,
			Wind:       external.WindDTO{Speed: 4.49},
			Sys:        external.SysDTO{Country: "FR"},
			Name:       "Paris",
		},
		forecast: &external.ForecastResponse{
			List: []external.ForecastItemDTO{
				{Dt: 300, Main: external.MainDTO{Temp: 19.7}, Weather: []external.ConditionDTO{{Main: "Clouds"}}, DtTxt: "c"},
				{Dt: 100, Main: external.MainDTO{Temp: 21.2}, DtTxt: "a"},
				{Dt: 200, Main: external.MainDTO{Temp: 20.4}, DtTxt: "b"},
			},
		},
	}
}

func TestByPlaceConvertsSnapshot(t *testing.T) {
	gateway := sampleGateway()
	uc := NewWeatherUseCase(gateway, "https://icons.example.com/wn")

	snapshot, err := uc.ByPlace(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("ByPlace: %v", err)
	}

	if got := gateway.calls; len(got) != 2 || got[0] != "current-place" || got[1] != "forecast-place" {
		t.Errorf("calls = %v, want current then forecast", got)
	}
	if snapshot.City != "Paris" || snapshot.Country != "FR" {
		t.Errorf("place = %s/%s", snapshot.City, snapshot.Country)
	}
	if snapshot.TemperatureCelsius != 23 {
		t.Errorf("temperature = %d, want 23", snapshot.TemperatureCelsius)
	}
	if snapshot.VisibilityKm != 10 || snapshot.WindSpeed != 4 || snapshot.Humidity != 81 {
		t.Errorf("visibility/wind/humidity = %d/%d/%d", snapshot.VisibilityKm, snapshot.WindSpeed, snapshot.Humidity)
	}
	if snapshot.IconURL != "https://icons.example.com/wn/10d.png" {
		t.Errorf("icon url = %q", snapshot.IconURL)
	}
	order := []string{"c", "a", "b"}
	for i, entry := range snapshot.Forecast {
		if entry.DateText != order[i] {
			t.Fatalf("forecast reordered: %+v", snapshot.Forecast)
		}
	}
	if snapshot.Forecast[1].ConditionMain != "" {
		t.Errorf("missing condition should stay empty, got %q", snapshot.Forecast[1].ConditionMain)
	}
}

func TestByCoordinatesStopsOnCurrentFailure(t *testing.T) {
	gateway := sampleGateway()
	boom := errors.New("boom")
	gateway.currentErr = boom
	uc := NewWeatherUseCase(gateway, "")

	_, err := uc.ByCoordinates(context.Background(), entity.Coordinates{Latitude: 1, Longitude: 2})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if len(gateway.calls) != 1 {
		t.Errorf("forecast must not be requested after a failed current call: %v", gateway.calls)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{22.5, 23},
		{22.49, 22},
		{-2.5, -2},
		{-2.51, -3},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
