package entity

import "time"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ForecastEntry is one future sample of the provider's forecast list.
type ForecastEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	DateText      string    `json:"dateText"`
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feelsLike"`
	Humidity      float64   `json:"humidity"`
	ConditionMain string    `json:"conditionMain"`
	Description   string    `json:"description"`
	ConditionIcon string    `json:"conditionIcon"`
}

// WeatherSnapshot is the combined result of one current-conditions and forecast request pair.
type WeatherSnapshot struct {
	City               string          `json:"city"`
	Country            string          `json:"country"`
	Coordinates        Coordinates     `json:"coordinates"`
	TemperatureCelsius int             `json:"temperatureCelsius"`
	Humidity           int             `json:"humidity"`
	VisibilityKm       int             `json:"visibilityKm"`
	WindSpeed          int             `json:"windSpeed"`
	ConditionMain      string          `json:"conditionMain"`
	Description        string          `json:"description"`
	ConditionIcon      string          `json:"conditionIcon"`
	IconURL            string          `json:"iconUrl"`
	Forecast           []ForecastEntry `json:"forecast"`
}
