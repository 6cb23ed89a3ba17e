package citysearch

import (
	"context"
	"strings"
	"sync"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/usecase/icon"
	"go-widget/internal/domain/usecase/weather"
	"go-widget/pkg/log"

	"go.uber.org/zap"
)

type view struct {
	weather    weather.UseCase
	onResolved ResolvedFunc
	id         string

	mu         sync.Mutex
	state      entity.SearchState
	generation uint64
	cancel     context.CancelFunc
}

// NewView builds a search panel; onResolved may be nil.
func NewView(weatherUseCase weather.UseCase, onResolved ResolvedFunc, sessionID string) View {
	return &view{
		weather:    weatherUseCase,
		onResolved: onResolved,
		id:         sessionID,
	}
}

func (v *view) SetQuery(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.QueryText = text
}

func (v *view) Search(ctx context.Context, cityText string) error {
	v.mu.Lock()
	query := strings.TrimSpace(cityText)
	if query == "" {
		query = strings.TrimSpace(v.state.QueryText)
	}
	if query == "" {
		searchErr := &entity.SearchError{Message: entity.MessageEmptyQuery}
		v.state.LastError = searchErr
		v.mu.Unlock()
		return searchErr
	}

	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	generation := v.generation
	searchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()
	defer cancel()

	snapshot, err := v.weather.ByPlace(searchCtx, query)

	v.mu.Lock()
	if generation != v.generation {
		v.mu.Unlock()
		return ErrSuperseded
	}
	v.cancel = nil

	if err != nil {
		searchErr := &entity.SearchError{Message: entity.MessageCityNotFound, Query: query}
		v.state.LastResult = nil
		v.state.LastError = searchErr
		v.mu.Unlock()

		log.Warn("City search failed",
			zap.String("session_id", v.id),
			zap.String("query", query),
			zap.Error(err))
		return searchErr
	}

	v.state.LastResult = snapshot
	v.state.QueryText = ""
	v.state.LastError = nil
	v.state.Icon = icon.MapConditionToIcon(snapshot.ConditionMain)
	v.mu.Unlock()

	log.Info("Weather Forecast Updated",
		zap.String("session_id", v.id),
		zap.String("city", snapshot.City),
		zap.String("country", snapshot.Country),
		zap.Int("temperature", snapshot.TemperatureCelsius),
		zap.String("description", snapshot.ConditionMain),
		zap.Int("humidity", snapshot.Humidity),
		zap.Int("wind_speed", snapshot.WindSpeed))

	if v.onResolved == nil {
		return nil
	}
	return v.onResolved(ctx, snapshot.City, snapshot.Country)
}

func (v *view) State() entity.SearchState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Clone()
}

func (v *view) Panel(parent ParentView) Panel {
	state := v.State()

	panel := Panel{
		Icon:     state.Icon,
		Weather:  parent.Weather,
		Forecast: parent.Forecast,
		Result:   state.LastResult,
		Error:    state.LastError,
		Query:    state.QueryText,
	}
	if panel.Icon == "" {
		panel.Icon = parent.Icon
	}
	if panel.Icon == "" {
		panel.Icon = entity.IconClearDay
	}
	if state.LastResult != nil {
		panel.Weather = state.LastResult.ConditionMain
	}
	if panel.Weather == "" {
		panel.Weather = entity.DefaultConditionMain
	}
	if panel.Forecast == nil {
		panel.Forecast = []entity.ForecastEntry{}
	}
	return panel
}
