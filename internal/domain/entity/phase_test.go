package entity

import (
	"errors"
	"testing"
)

func TestNextPhase(t *testing.T) {
	tests := []struct {
		name    string
		from    Phase
		event   PhaseEvent
		want    Phase
		wantErr error
	}{
		{"first coordinates", PhaseDetecting, EventCoordinatesFetched, PhaseLocationResolved, nil},
		{"later coordinates", PhaseLocationResolved, EventCoordinatesFetched, PhaseLocationResolved, nil},
		{"search after location", PhaseLocationResolved, EventSearchSucceeded, PhaseSearchActive, nil},
		{"search before location", PhaseDetecting, EventSearchSucceeded, PhaseSearchActive, nil},
		{"search again", PhaseSearchActive, EventSearchSucceeded, PhaseSearchActive, nil},
		{"coordinates after search", PhaseSearchActive, EventCoordinatesFetched, PhaseSearchActive, ErrLatched},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextPhase(tt.from, tt.event)
			if got != tt.want {
				t.Errorf("NextPhase() = %s, want %s", got, tt.want)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NextPhase() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNextPhaseUnknownEvent(t *testing.T) {
	got, err := NextPhase(PhaseDetecting, PhaseEvent("Reset"))
	if err == nil {
		t.Fatal("expected error for unknown event")
	}
	if got != PhaseDetecting {
		t.Errorf("phase changed to %s", got)
	}
}

func TestLocationStateClone(t *testing.T) {
	temp := 21
	state := NewLocationState()
	state.TemperatureCelsius = &temp
	state.Forecast = []ForecastEntry{{Temperature: 20}}

	clone := state.Clone()
	*clone.TemperatureCelsius = 99
	clone.Forecast[0].Temperature = 99

	if *state.TemperatureCelsius != 21 {
		t.Error("clone shares temperature pointer")
	}
	if state.Forecast[0].Temperature != 20 {
		t.Error("clone shares forecast backing array")
	}
}
