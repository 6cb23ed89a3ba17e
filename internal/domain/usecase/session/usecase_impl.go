package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/gateway/event"
	"go-widget/internal/domain/gateway/geo"
	"go-widget/internal/domain/model"
	"go-widget/internal/domain/usecase/citysearch"
	"go-widget/internal/domain/usecase/locationview"
	"go-widget/internal/domain/usecase/weather"
	"go-widget/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultIdleTTL = 30 * time.Minute

type sessionUseCase struct {
	weather   weather.UseCase
	notifier  event.Notifier
	ipLocator geo.Locator
	opts      Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionUseCase builds the session registry. ipLocator is optional and only
// consulted when the client has no geolocation capability.
func NewSessionUseCase(weatherUseCase weather.UseCase, notifier event.Notifier, ipLocator geo.Locator, opts Options) UseCase {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = defaultIdleTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if notifier == nil {
		notifier = event.NewLogNotifier()
	}
	return &sessionUseCase{
		weather:   weatherUseCase,
		notifier:  notifier,
		ipLocator: ipLocator,
		opts:      opts,
		sessions:  make(map[string]*Session),
	}
}

func (uc *sessionUseCase) Create(ctx context.Context, req model.MountRequest) (*Session, *entity.LocationNotice, error) {
	locator, err := uc.locatorFor(req)
	if err != nil {
		return nil, nil, err
	}

	now := uc.opts.Now()
	id := uuid.NewString()
	location := locationview.NewView(uc.weather, locator, locationview.Options{
		DefaultCoordinates: uc.opts.DefaultCoordinates,
		SessionID:          id,
		Now:                uc.opts.Now,
	})
	search := citysearch.NewView(uc.weather, func(ctx context.Context, city, country string) error {
		err := location.OnSearchResolved(ctx, city, country)
		if errors.Is(err, locationview.ErrSuperseded) {
			return nil
		}
		return err
	}, id)

	s := &Session{
		ID:        id,
		CreatedAt: now,
		location:  location,
		search:    search,
		lastSeen:  now,
	}

	uc.mu.Lock()
	uc.sessions[id] = s
	uc.mu.Unlock()

	log.Info("Session created",
		zap.String("session_id", id),
		zap.String("geolocation", string(req.Geolocation)))
	uc.notify(ctx, event.SessionCreated, id, map[string]string{"geolocation": string(req.Geolocation)})

	notice, mountErr := location.Mount(ctx)
	if notice != nil {
		s.mu.Lock()
		s.notice = notice
		s.mu.Unlock()
		uc.notify(ctx, event.LocationFallback, id, notice)
	}
	if mountErr != nil {
		uc.notify(ctx, event.FetchFailed, id, location.State().LastError)
		return s, notice, mountErr
	}

	uc.notifyWeather(ctx, s)
	return s, notice, nil
}

func (uc *sessionUseCase) locatorFor(req model.MountRequest) (geo.Locator, error) {
	switch req.Geolocation {
	case model.GeolocationGranted:
		if req.Position == nil {
			return nil, fmt.Errorf("%w: granted without a position", ErrInvalidMount)
		}
		return geo.DeviceLocator{Coordinates: entity.Coordinates{
			Latitude:  req.Position.Latitude,
			Longitude: req.Position.Longitude,
		}}, nil
	case model.GeolocationDenied:
		return geo.DeniedLocator{}, nil
	case model.GeolocationUnsupported, "":
		if uc.ipLocator == nil {
			return geo.UnsupportedLocator{}, nil
		}
		return geo.WithFallback(geo.UnsupportedLocator{}, uc.ipLocator), nil
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidMount, req.Geolocation)
	}
}

func (uc *sessionUseCase) Get(id string) (*Session, error) {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(uc.opts.Now())
	return s, nil
}

func (uc *sessionUseCase) SetQuery(id string, text string) error {
	s, err := uc.Get(id)
	if err != nil {
		return err
	}
	s.search.SetQuery(text)
	return nil
}

func (uc *sessionUseCase) Search(ctx context.Context, id string, city string) error {
	s, err := uc.Get(id)
	if err != nil {
		return err
	}

	err = s.search.Search(ctx, city)
	var searchErr *entity.SearchError
	switch {
	case err == nil:
		uc.notifyWeather(ctx, s)
		return nil
	case errors.As(err, &searchErr):
		uc.notify(ctx, event.SearchFailed, id, searchErr)
		return err
	case errors.Is(err, citysearch.ErrSuperseded):
		return err
	default:
		uc.notify(ctx, event.FetchFailed, id, s.location.State().LastError)
		return err
	}
}

func (uc *sessionUseCase) SelectForecast(id string, req model.SelectForecastRequest) error {
	s, err := uc.Get(id)
	if err != nil {
		return err
	}
	switch {
	case req.Index != nil:
		return s.location.SelectForecastEntry(*req.Index)
	case req.Temperature != nil:
		s.location.OnForecastEntrySelected(*req.Temperature)
		return nil
	default:
		return ErrInvalidSelection
	}
}

func (uc *sessionUseCase) Refresh(ctx context.Context, id string) error {
	s, err := uc.Get(id)
	if err != nil {
		return err
	}
	if err = s.location.Refresh(ctx); err != nil {
		if !errors.Is(err, locationview.ErrSuperseded) && !errors.Is(err, locationview.ErrNothingToRefresh) {
			uc.notify(ctx, event.FetchFailed, id, s.location.State().LastError)
		}
		return err
	}
	uc.notifyWeather(ctx, s)
	return nil
}

func (uc *sessionUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	_, ok := uc.sessions[id]
	delete(uc.sessions, id)
	uc.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	log.Info("Session deleted", zap.String("session_id", id))
	uc.notify(ctx, event.SessionDeleted, id, nil)
	return nil
}

func (uc *sessionUseCase) SweepIdle(now time.Time) int {
	var expired []string

	uc.mu.Lock()
	for id, s := range uc.sessions {
		if now.Sub(s.LastSeen()) > uc.opts.IdleTTL {
			delete(uc.sessions, id)
			expired = append(expired, id)
		}
	}
	uc.mu.Unlock()

	for _, id := range expired {
		uc.notify(context.Background(), event.SessionDeleted, id, map[string]string{"reason": "idle"})
	}
	return len(expired)
}

func (uc *sessionUseCase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.sessions)
}

func (uc *sessionUseCase) notifyWeather(ctx context.Context, s *Session) {
	state := s.location.State()
	payload := map[string]any{
		"city":    state.City,
		"country": state.Country,
		"phase":   state.Phase,
	}
	if state.TemperatureCelsius != nil {
		payload["temperature"] = *state.TemperatureCelsius
	}
	uc.notify(ctx, event.WeatherUpdated, s.ID, payload)
}

// notify never fails the calling operation; publishing problems are only logged
func (uc *sessionUseCase) notify(ctx context.Context, eventType event.Type, sessionID string, payload any) {
	evt := event.Event{
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payload,
		At:        uc.opts.Now(),
	}
	if err := uc.notifier.Notify(context.WithoutCancel(ctx), evt); err != nil {
		log.Warn("Failed to publish widget event",
			zap.String("type", string(eventType)),
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}
