package entity

import "time"

const (
	DetectingCity        = "Detecting location..."
	DefaultConditionMain = "Clear"
)

// FetchErrorKind classifies a failed weather fetch.
type FetchErrorKind string

const (
	FetchLookupFailed FetchErrorKind = "lookup_failed"
	FetchNetwork      FetchErrorKind = "network"
)

// FetchError is recorded on the location state when a fetch fails; weather fields stay untouched.
type FetchError struct {
	Kind    FetchErrorKind `json:"kind"`
	Message string         `json:"message"`
	Source  string         `json:"source"`
	At      time.Time      `json:"at"`
}

// LocationState is the weather owned by the location view.
type LocationState struct {
	Coordinates         Coordinates     `json:"coordinates"`
	City                string          `json:"city"`
	Country             string          `json:"country"`
	TemperatureCelsius  *int            `json:"temperatureCelsius,omitempty"`
	ConditionMain       string          `json:"conditionMain"`
	Icon                IconKey         `json:"icon"`
	Forecast            []ForecastEntry `json:"forecast"`
	Phase               Phase           `json:"phase"`
	SearchActive        bool            `json:"searchActive"`
	SelectedTemperature *float64        `json:"selectedTemperature,omitempty"`
	LastError           *FetchError     `json:"lastError,omitempty"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// NewLocationState returns the sentinel state shown before any fetch completes.
func NewLocationState() LocationState {
	return LocationState{
		City:          DetectingCity,
		ConditionMain: DefaultConditionMain,
		Icon:          IconClearDay,
		Forecast:      []ForecastEntry{},
		Phase:         PhaseDetecting,
	}
}

// HasWeather reports whether at least one fetch has replaced the sentinel values.
func (s LocationState) HasWeather() bool {
	return s.TemperatureCelsius != nil
}

// Clone returns a copy that shares no mutable memory with s.
func (s LocationState) Clone() LocationState {
	out := s
	if s.TemperatureCelsius != nil {
		t := *s.TemperatureCelsius
		out.TemperatureCelsius = &t
	}
	if s.SelectedTemperature != nil {
		t := *s.SelectedTemperature
		out.SelectedTemperature = &t
	}
	if s.LastError != nil {
		e := *s.LastError
		out.LastError = &e
	}
	out.Forecast = append([]ForecastEntry(nil), s.Forecast...)
	return out
}
