package locationview

import (
	"context"
	"errors"
	"time"

	"go-widget/internal/domain/entity"
)

const (
	DefaultLatitude  = 23.6889
	DefaultLongitude = 86.9661
)

var (
	ErrAlreadyMounted    = errors.New("location view already mounted")
	ErrSuperseded        = errors.New("fetch superseded by a newer request")
	ErrNothingToRefresh  = errors.New("no previous fetch to refresh")
	ErrNoForecastEntries = errors.New("forecast entry out of range")
)

// View owns the displayed location weather until a manual search takes over.
type View interface {
	// Mount resolves the position once and fetches its weather.
	// The notice is non-nil when the default location had to be used.
	Mount(ctx context.Context) (*entity.LocationNotice, error)

	// FetchByCoordinates replaces the state with the weather at coords.
	// Returns entity.ErrLatched once a search is active.
	FetchByCoordinates(ctx context.Context, coords entity.Coordinates) error

	// OnSearchResolved latches the view to a searched place and re-fetches it by name.
	OnSearchResolved(ctx context.Context, city, country string) error

	// OnForecastEntrySelected overrides the displayed temperature until the next replacement.
	OnForecastEntrySelected(temperature float64)

	// SelectForecastEntry is OnForecastEntrySelected using the temperature of the entry at index.
	SelectForecastEntry(index int) error

	// DisplayedTemperature is the selected forecast temperature if any, else the live one.
	DisplayedTemperature() (int, bool)

	// Refresh re-runs the last coordinate or place fetch.
	Refresh(ctx context.Context) error

	// State returns a copy of the current state.
	State() entity.LocationState
}

// Options tune a view; zero values use the defaults.
type Options struct {
	DefaultCoordinates *entity.Coordinates
	SessionID          string
	Now                func() time.Time
}
