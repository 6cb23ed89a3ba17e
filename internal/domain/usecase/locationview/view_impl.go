package locationview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/gateway/api"
	"go-widget/internal/domain/gateway/geo"
	"go-widget/internal/domain/usecase/icon"
	"go-widget/internal/domain/usecase/weather"
	"go-widget/pkg/log"

	"go.uber.org/zap"
)

const (
	sourceCoordinates = "coordinates"
	sourcePlace       = "place"
)

// target is what a fetch was issued for: a place name or a coordinate pair.
type target struct {
	place  string
	coords entity.Coordinates
	set    bool
}

func (t target) source() string {
	if t.place != "" {
		return sourcePlace
	}
	return sourceCoordinates
}

type view struct {
	weather  weather.UseCase
	locator  geo.Locator
	fallback entity.Coordinates
	id       string
	now      func() time.Time

	mu         sync.Mutex
	state      entity.LocationState
	mounted    bool
	generation uint64
	cancel     context.CancelFunc
	last       target
}

func NewView(weatherUseCase weather.UseCase, locator geo.Locator, opts Options) View {
	fallback := entity.Coordinates{Latitude: DefaultLatitude, Longitude: DefaultLongitude}
	if opts.DefaultCoordinates != nil {
		fallback = *opts.DefaultCoordinates
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if locator == nil {
		locator = geo.UnsupportedLocator{}
	}
	return &view{
		weather:  weatherUseCase,
		locator:  locator,
		fallback: fallback,
		id:       opts.SessionID,
		now:      opts.Now,
		state:    entity.NewLocationState(),
	}
}

func (v *view) Mount(ctx context.Context) (*entity.LocationNotice, error) {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return nil, ErrAlreadyMounted
	}
	v.mounted = true
	v.mu.Unlock()

	coords, err := v.locator.Locate(ctx)
	if err == nil {
		v.mu.Lock()
		v.state.Coordinates = coords
		searchActive := v.state.SearchActive
		v.mu.Unlock()

		if searchActive {
			log.Info("Position resolved after search, ignoring",
				zap.String("session_id", v.id))
			return nil, nil
		}
		return nil, v.ignoreDiscarded(v.FetchByCoordinates(ctx, coords))
	}

	kind := entity.NoticePermissionDenied
	if errors.Is(err, geo.ErrCapabilityUnavailable) {
		kind = entity.NoticeCapabilityUnavailable
	}
	notice := entity.NewLocationNotice(kind, v.fallback)

	log.Warn("Geolocation failed, using default location",
		zap.String("session_id", v.id),
		zap.String("kind", string(kind)),
		zap.Float64("latitude", v.fallback.Latitude),
		zap.Float64("longitude", v.fallback.Longitude),
		zap.Error(err))

	return notice, v.ignoreDiscarded(v.FetchByCoordinates(ctx, v.fallback))
}

// ignoreDiscarded hides results dropped because a search or a newer fetch won.
func (v *view) ignoreDiscarded(err error) error {
	if errors.Is(err, entity.ErrLatched) || errors.Is(err, ErrSuperseded) {
		return nil
	}
	return err
}

func (v *view) FetchByCoordinates(ctx context.Context, coords entity.Coordinates) error {
	return v.fetch(ctx, target{coords: coords, set: true})
}

func (v *view) OnSearchResolved(ctx context.Context, city, country string) error {
	v.mu.Lock()
	next, err := entity.NextPhase(v.state.Phase, entity.EventSearchSucceeded)
	if err != nil {
		v.mu.Unlock()
		return err
	}
	if v.state.Phase != next {
		log.Info("Search took over the location view",
			zap.String("session_id", v.id),
			zap.String("from", string(v.state.Phase)),
			zap.String("to", string(next)))
	}
	v.state.Phase = next
	v.state.SearchActive = true
	v.mu.Unlock()

	place := city
	if country != "" {
		place = city + "," + country
	}
	return v.fetch(ctx, target{place: place, set: true})
}

func (v *view) OnForecastEntrySelected(temperature float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.SelectedTemperature = &temperature
}

func (v *view) SelectForecastEntry(index int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 || index >= len(v.state.Forecast) {
		return fmt.Errorf("%w: %d of %d", ErrNoForecastEntries, index, len(v.state.Forecast))
	}
	temperature := v.state.Forecast[index].Temperature
	v.state.SelectedTemperature = &temperature
	return nil
}

func (v *view) DisplayedTemperature() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.SelectedTemperature != nil {
		return weather.RoundHalfUp(*v.state.SelectedTemperature), true
	}
	if v.state.TemperatureCelsius != nil {
		return *v.state.TemperatureCelsius, true
	}
	return 0, false
}

func (v *view) Refresh(ctx context.Context) error {
	v.mu.Lock()
	last := v.last
	v.mu.Unlock()
	if !last.set {
		return ErrNothingToRefresh
	}
	return v.fetch(ctx, last)
}

func (v *view) State() entity.LocationState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Clone()
}

// fetch runs one current+forecast pair. Each call bumps the generation and cancels the
// previous in-flight request; a result whose generation is no longer current is dropped.
func (v *view) fetch(ctx context.Context, t target) error {
	v.mu.Lock()
	if t.place == "" && v.state.SearchActive {
		v.mu.Unlock()
		return entity.ErrLatched
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	generation := v.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.last = t
	v.mu.Unlock()
	defer cancel()

	var snapshot *entity.WeatherSnapshot
	var err error
	if t.place != "" {
		snapshot, err = v.weather.ByPlace(fetchCtx, t.place)
	} else {
		snapshot, err = v.weather.ByCoordinates(fetchCtx, t.coords)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if generation != v.generation {
		log.Debug("Dropping superseded fetch",
			zap.String("session_id", v.id),
			zap.Uint64("generation", generation),
			zap.Uint64("current_generation", v.generation))
		return ErrSuperseded
	}
	v.cancel = nil

	if err != nil {
		v.state.LastError = v.fetchError(t, err)
		log.Error("Weather fetch failed",
			zap.String("session_id", v.id),
			zap.String("source", t.source()),
			zap.String("phase", string(v.state.Phase)),
			zap.Error(err))
		return fmt.Errorf("failed to fetch weather by %s: %w", t.source(), err)
	}

	event := entity.EventCoordinatesFetched
	if t.place != "" {
		event = entity.EventSearchSucceeded
	}
	next, err := entity.NextPhase(v.state.Phase, event)
	if err != nil {
		return err
	}

	coords := snapshot.Coordinates
	if t.place == "" {
		coords = t.coords
	}
	temperature := snapshot.TemperatureCelsius
	v.state = entity.LocationState{
		Coordinates:        coords,
		City:               snapshot.City,
		Country:            snapshot.Country,
		TemperatureCelsius: &temperature,
		ConditionMain:      snapshot.ConditionMain,
		Icon:               icon.MapConditionToIcon(snapshot.ConditionMain),
		Forecast:           snapshot.Forecast,
		Phase:              next,
		SearchActive:       next == entity.PhaseSearchActive,
		UpdatedAt:          v.now(),
	}
	if v.state.Forecast == nil {
		v.state.Forecast = []entity.ForecastEntry{}
	}

	log.Info("Location view updated",
		zap.String("session_id", v.id),
		zap.String("phase", string(next)),
		zap.Uint64("generation", generation),
		zap.String("city", snapshot.City))
	return nil
}

func (v *view) fetchError(t target, err error) *entity.FetchError {
	kind := entity.FetchNetwork
	var lookupErr *api.LookupError
	if errors.As(err, &lookupErr) {
		kind = entity.FetchLookupFailed
	}
	return &entity.FetchError{
		Kind:    kind,
		Message: err.Error(),
		Source:  t.source(),
		At:      v.now(),
	}
}
