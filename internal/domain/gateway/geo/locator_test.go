package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-widget/internal/domain/entity"
)

func TestSimpleLocators(t *testing.T) {
	paris := entity.Coordinates{Latitude: 48.85, Longitude: 2.35}
	tests := []struct {
		name    string
		locator Locator
		want    entity.Coordinates
		wantErr error
	}{
		{"device", DeviceLocator{Coordinates: paris}, paris, nil},
		{"denied", DeniedLocator{}, entity.Coordinates{}, ErrPermissionDenied},
		{"unsupported", UnsupportedLocator{}, entity.Coordinates{}, ErrCapabilityUnavailable},
		{"static", StaticLocator{Coordinates: paris}, paris, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.locator.Locate(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("coordinates = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithFallback(t *testing.T) {
	ip := StaticLocator{Coordinates: entity.Coordinates{Latitude: 1, Longitude: 2}}

	got, err := WithFallback(UnsupportedLocator{}, ip).Locate(context.Background())
	if err != nil || got.Latitude != 1 {
		t.Errorf("unsupported should use fallback, got %+v %v", got, err)
	}

	if _, err = WithFallback(DeniedLocator{}, ip).Locate(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("denied must not fall back, got %v", err)
	}

	failing := StaticLocator{Err: errors.New("lookup down")}
	if _, err = WithFallback(UnsupportedLocator{}, failing).Locate(context.Background()); !errors.Is(err, ErrCapabilityUnavailable) {
		t.Errorf("failed fallback should keep the original error, got %v", err)
	}
}

func TestIPLocator(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    entity.Coordinates
		wantErr bool
	}{
		{"success", http.StatusOK, `{"status":"success","city":"Asansol","countryCode":"IN","lat":23.68,"lon":86.98}`, entity.Coordinates{Latitude: 23.68, Longitude: 86.98}, false},
		{"reserved range", http.StatusOK, `{"status":"fail","message":"reserved range"}`, entity.Coordinates{}, true},
		{"server error", http.StatusInternalServerError, `{}`, entity.Coordinates{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/json" {
					t.Errorf("path = %q", r.URL.Path)
				}
				if r.URL.Query().Get("fields") == "" {
					t.Error("fields query param missing")
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := NewIPLocator(server.URL, time.Second).Locate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("coordinates = %+v, want %+v", got, tt.want)
			}
		})
	}
}
