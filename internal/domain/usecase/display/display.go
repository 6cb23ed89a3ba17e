// Package display turns view state into the rendered widget.
package display

import (
	"fmt"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model"
	"go-widget/internal/domain/usecase/citysearch"
	"go-widget/internal/domain/usecase/icon"
	"go-widget/internal/domain/usecase/weather"
)

const (
	LoadingTitle       = "Detecting your location"
	LoadingMessage     = "Your current location will be displayed on the App & used for calculating real-time weather."
	SearchPlaceholder  = "Search for a city to display weather information."
	clockLayout        = "15:04:05"
	dateLayout         = "Monday, 2 January 2006"
	temperatureSuffix  = "°C"
	visibilityUnit     = " km"
	windSpeedUnit      = " km/h"
	humidityPercentage = "%"
)

// FormatDate renders a date as "Sunday, 5 January 2025".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatClock renders the time of day as "HH:mm:ss".
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// TemperatureLabel renders whole degrees as "23°C".
func TemperatureLabel(celsius int) string {
	return fmt.Sprintf("%d%s", celsius, temperatureSuffix)
}

// Input is everything needed to render one session.
type Input struct {
	SessionID            string
	Location             entity.LocationState
	DisplayedTemperature int
	HasTemperature       bool
	Panel                citysearch.Panel
	Now                  time.Time
}

// Render builds the widget view. The main card is replaced by the loading screen until
// the first weather arrives.
func Render(in Input) model.WidgetView {
	view := model.WidgetView{
		SessionID:  in.SessionID,
		Phase:      in.Location.Phase,
		FetchError: in.Location.LastError,
		Search:     renderPanel(in.Panel),
		Forecast:   renderForecast(in.Location.Forecast),
	}

	if !in.Location.HasWeather() || !in.HasTemperature {
		view.Loading = &model.LoadingView{Title: LoadingTitle, Message: LoadingMessage}
		return view
	}

	loc := in.Location
	view.Location = &model.LocationView{
		City:             loc.City,
		Country:          loc.Country,
		ConditionMain:    loc.ConditionMain,
		Icon:             loc.Icon,
		Background:       icon.BackgroundFor(loc.ConditionMain),
		Temperature:      in.DisplayedTemperature,
		TemperatureLabel: TemperatureLabel(in.DisplayedTemperature),
		FromForecast:     loc.SelectedTemperature != nil,
		Date:             FormatDate(in.Now),
		Clock:            FormatClock(in.Now),
		Coordinates:      loc.Coordinates,
		SearchActive:     loc.SearchActive,
	}
	return view
}

func renderPanel(panel citysearch.Panel) model.SearchPanelView {
	out := model.SearchPanelView{
		Icon:        panel.Icon,
		Weather:     panel.Weather,
		Query:       panel.Query,
		SearchError: panel.Error,
	}

	result := panel.Result
	if result == nil {
		out.Message = SearchPlaceholder
		if panel.Error != nil {
			out.Message = panel.Error.Error()
		}
		return out
	}

	out.Heading = result.City
	if result.Country != "" {
		out.Heading += ", " + result.Country
	}
	out.IconURL = result.IconURL
	out.Details = &model.SearchDetailsView{
		Temperature: fmt.Sprintf("%s (%s)", TemperatureLabel(result.TemperatureCelsius), result.ConditionMain),
		Humidity:    fmt.Sprintf("%d%s", result.Humidity, humidityPercentage),
		Visibility:  fmt.Sprintf("%d%s", result.VisibilityKm, visibilityUnit),
		WindSpeed:   fmt.Sprintf("%d%s", result.WindSpeed, windSpeedUnit),
	}
	return out
}

func renderForecast(entries []entity.ForecastEntry) []model.ForecastEntryView {
	out := make([]model.ForecastEntryView, 0, len(entries))
	for i, entry := range entries {
		out = append(out, model.ForecastEntryView{
			Index:            i,
			DateText:         entry.DateText,
			Temperature:      entry.Temperature,
			TemperatureLabel: TemperatureLabel(weather.RoundHalfUp(entry.Temperature)),
			ConditionMain:    entry.ConditionMain,
		})
	}
	return out
}
