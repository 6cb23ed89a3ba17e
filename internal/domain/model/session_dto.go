package model

import "go-widget/internal/domain/entity"

// GeolocationStatus is what the client reports about its position capability
type GeolocationStatus string

const (
	GeolocationGranted     GeolocationStatus = "granted"
	GeolocationDenied      GeolocationStatus = "denied"
	GeolocationUnsupported GeolocationStatus = "unsupported"
)

// PositionDTO is a device position reported by the client
type PositionDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MountRequest opens a widget session. An empty status is treated as unsupported.
type MountRequest struct {
	Geolocation GeolocationStatus `json:"geolocation"`
	Position    *PositionDTO      `json:"position,omitempty"`
}

// QueryRequest mirrors the search input text
type QueryRequest struct {
	Query string `json:"query"`
}

// SearchRequest triggers a city search; an empty city uses the current input
type SearchRequest struct {
	City string `json:"city"`
}

// SelectForecastRequest picks a forecast entry by index or gives the temperature directly
type SelectForecastRequest struct {
	Index       *int     `json:"index,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// CreateSessionResponse is returned when a session is opened
type CreateSessionResponse struct {
	SessionID string                 `json:"sessionId"`
	Notice    *entity.LocationNotice `json:"notice,omitempty"`
	View      WidgetView             `json:"view"`
}
