package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model"
	"go-widget/internal/domain/usecase/citysearch"
	"go-widget/internal/domain/usecase/display"
	"go-widget/internal/domain/usecase/locationview"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidMount     = errors.New("invalid geolocation report")
	ErrInvalidSelection = errors.New("either index or temperature must be given")
)

// UseCase keeps the open widget sessions. Each session composes one location view
// and one city search panel.
type UseCase interface {
	// Create opens a session and mounts its location view. The session is returned
	// even when the first fetch fails so the caller can refresh it.
	Create(ctx context.Context, req model.MountRequest) (*Session, *entity.LocationNotice, error)

	// Get returns a session and marks it as seen
	Get(id string) (*Session, error)

	SetQuery(id string, text string) error

	// Search runs a city search; a *entity.SearchError is returned for inline errors
	Search(ctx context.Context, id string, city string) error

	SelectForecast(id string, req model.SelectForecastRequest) error

	// Refresh re-runs the last fetch of the location view
	Refresh(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error

	// SweepIdle removes sessions not seen within the idle TTL and returns how many were removed
	SweepIdle(now time.Time) int

	Count() int
}

// Options configure the session use case; zero values use the defaults
type Options struct {
	DefaultCoordinates *entity.Coordinates
	IdleTTL            time.Duration
	Now                func() time.Time
}

// Session is one open widget
type Session struct {
	ID        string
	CreatedAt time.Time

	location locationview.View
	search   citysearch.View

	mu       sync.Mutex
	notice   *entity.LocationNotice
	lastSeen time.Time
}

func (s *Session) Location() locationview.View {
	return s.location
}

func (s *Session) Search() citysearch.View {
	return s.search
}

// Notice is the geolocation fallback notice produced at mount, if any
func (s *Session) Notice() *entity.LocationNotice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

// ParentView is the location state handed down to the search panel
func (s *Session) ParentView() citysearch.ParentView {
	state := s.location.State()
	return citysearch.ParentView{
		Icon:     state.Icon,
		Weather:  state.ConditionMain,
		Forecast: state.Forecast,
	}
}

// View renders the session at now
func (s *Session) View(now time.Time) model.WidgetView {
	temperature, ok := s.location.DisplayedTemperature()
	return display.Render(display.Input{
		SessionID:            s.ID,
		Location:             s.location.State(),
		DisplayedTemperature: temperature,
		HasTemperature:       ok,
		Panel:                s.search.Panel(s.ParentView()),
		Now:                  now,
	})
}
