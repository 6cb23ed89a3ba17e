package citysearch

import (
	"context"
	"errors"

	"go-widget/internal/domain/entity"
)

var ErrSuperseded = errors.New("search superseded by a newer one")

// ResolvedFunc is told the place a successful search resolved to.
type ResolvedFunc func(ctx context.Context, city, country string) error

// ParentView is what the owning location view exposes to the search panel.
type ParentView struct {
	Icon     entity.IconKey
	Weather  string
	Forecast []entity.ForecastEntry
}

// Panel is the resolved content of the search panel.
type Panel struct {
	Icon     entity.IconKey
	Weather  string
	Forecast []entity.ForecastEntry
	Result   *entity.WeatherSnapshot
	Error    *entity.SearchError
	Query    string
}

// View is the manual city search panel.
type View interface {
	// SetQuery mirrors the text of the search input.
	SetQuery(text string)

	// Search looks up cityText, or the current input when cityText is blank.
	// Empty and failed lookups return a *entity.SearchError.
	Search(ctx context.Context, cityText string) error

	// State returns a copy of the current state.
	State() entity.SearchState

	// Panel merges the local result with the parent inputs.
	Panel(parent ParentView) Panel
}
