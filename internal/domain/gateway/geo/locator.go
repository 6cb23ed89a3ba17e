package geo

import (
	"context"
	"errors"

	"go-widget/internal/domain/entity"
)

var (
	// ErrCapabilityUnavailable means no position source exists for the caller.
	ErrCapabilityUnavailable = errors.New("geolocation is not available")
	// ErrPermissionDenied means the user refused to share the position.
	ErrPermissionDenied = errors.New("geolocation permission denied")
)

// Locator resolves the caller's position once.
type Locator interface {
	Locate(ctx context.Context) (entity.Coordinates, error)
}

// DeviceLocator returns the position reported by the client device.
type DeviceLocator struct {
	Coordinates entity.Coordinates
}

func (l DeviceLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, err
	}
	return l.Coordinates, nil
}

// DeniedLocator reports that the user refused geolocation.
type DeniedLocator struct{}

func (DeniedLocator) Locate(context.Context) (entity.Coordinates, error) {
	return entity.Coordinates{}, ErrPermissionDenied
}

// UnsupportedLocator reports that the client has no geolocation capability.
type UnsupportedLocator struct{}

func (UnsupportedLocator) Locate(context.Context) (entity.Coordinates, error) {
	return entity.Coordinates{}, ErrCapabilityUnavailable
}

// StaticLocator returns a fixed result.
type StaticLocator struct {
	Coordinates entity.Coordinates
	Err         error
}

func (l StaticLocator) Locate(context.Context) (entity.Coordinates, error) {
	return l.Coordinates, l.Err
}

type fallbackLocator struct {
	primary   Locator
	secondary Locator
}

// WithFallback asks secondary when primary has no capability at all.
// A denied permission is final and never reaches secondary; if secondary fails the primary error is kept.
func WithFallback(primary, secondary Locator) Locator {
	if secondary == nil {
		return primary
	}
	return &fallbackLocator{primary: primary, secondary: secondary}
}

func (l *fallbackLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	coords, err := l.primary.Locate(ctx)
	if err == nil || !errors.Is(err, ErrCapabilityUnavailable) {
		return coords, err
	}
	if fallback, fbErr := l.secondary.Locate(ctx); fbErr == nil {
		return fallback, nil
	}
	return entity.Coordinates{}, err
}
