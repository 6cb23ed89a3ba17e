package model

import "go-widget/internal/domain/entity"

// WidgetView is the rendered content of one widget session
type WidgetView struct {
	SessionID  string              `json:"sessionId"`
	Phase      entity.Phase        `json:"phase"`
	Loading    *LoadingView        `json:"loading,omitempty"`
	Location   *LocationView       `json:"location,omitempty"`
	Search     SearchPanelView     `json:"search"`
	FetchError *entity.FetchError  `json:"fetchError,omitempty"`
	Forecast   []ForecastEntryView `json:"forecast"`
}

// LoadingView is shown until the first weather arrives
type LoadingView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// LocationView is the main weather card
type LocationView struct {
	City             string             `json:"city"`
	Country          string             `json:"country"`
	ConditionMain    string             `json:"conditionMain"`
	Icon             entity.IconKey     `json:"icon"`
	Background       entity.Background  `json:"background"`
	Temperature      int                `json:"temperature"`
	TemperatureLabel string             `json:"temperatureLabel"`
	FromForecast     bool               `json:"fromForecast"`
	Date             string             `json:"date"`
	Clock            string             `json:"clock"`
	Coordinates      entity.Coordinates `json:"coordinates"`
	SearchActive     bool               `json:"searchActive"`
}

// SearchPanelView is the manual search panel
type SearchPanelView struct {
	Icon        entity.IconKey      `json:"icon"`
	Weather     string              `json:"weather"`
	Query       string              `json:"query"`
	Heading     string              `json:"heading,omitempty"`
	IconURL     string              `json:"iconUrl,omitempty"`
	Details     *SearchDetailsView  `json:"details,omitempty"`
	Message     string              `json:"message,omitempty"`
	SearchError *entity.SearchError `json:"searchError,omitempty"`
}

// SearchDetailsView lists the searched city's conditions
type SearchDetailsView struct {
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	Visibility  string `json:"visibility"`
	WindSpeed   string `json:"windSpeed"`
}

// ForecastEntryView is one selectable forecast sample
type ForecastEntryView struct {
	Index            int     `json:"index"`
	DateText         string  `json:"dateText"`
	Temperature      float64 `json:"temperature"`
	TemperatureLabel string  `json:"temperatureLabel"`
	ConditionMain    string  `json:"conditionMain"`
}
