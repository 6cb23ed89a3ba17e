package event

import (
	"context"
	"time"
)

// Type names a widget lifecycle event.
type Type string

const (
	SessionCreated   Type = "session.created"
	LocationFallback Type = "location.fallback"
	WeatherUpdated   Type = "weather.updated"
	SearchFailed     Type = "search.failed"
	FetchFailed      Type = "fetch.failed"
	SessionDeleted   Type = "session.deleted"
)

// Event is the envelope published for every widget lifecycle change.
type Event struct {
	Type      Type      `json:"type"`
	SessionID string    `json:"sessionId"`
	Payload   any       `json:"payload,omitempty"`
	At        time.Time `json:"at"`
}

// Notifier fans widget events out to interested listeners
type Notifier interface {
	Notify(ctx context.Context, evt Event) error
}
