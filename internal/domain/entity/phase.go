package entity

import (
	"errors"
	"fmt"
)

// Phase is the ownership state of the displayed location.
type Phase string

const (
	PhaseDetecting        Phase = "Detecting"
	PhaseLocationResolved Phase = "LocationResolved"
	PhaseSearchActive     Phase = "SearchActive"
)

// PhaseEvent is an input to the phase machine.
type PhaseEvent string

const (
	EventCoordinatesFetched PhaseEvent = "CoordinatesFetched"
	EventSearchSucceeded    PhaseEvent = "SearchSucceeded"
)

// ErrLatched is returned when a coordinate-driven result arrives after a search took over.
var ErrLatched = errors.New("search is active, coordinate updates are ignored")

// NextPhase is the single transition function of the location view.
// SearchActive is terminal: once entered no event leaves it, and coordinate results are rejected.
func NextPhase(current Phase, event PhaseEvent) (Phase, error) {
	switch event {
	case EventSearchSucceeded:
		switch current {
		case PhaseDetecting, PhaseLocationResolved, PhaseSearchActive:
			return PhaseSearchActive, nil
		}
	case EventCoordinatesFetched:
		switch current {
		case PhaseDetecting, PhaseLocationResolved:
			return PhaseLocationResolved, nil
		case PhaseSearchActive:
			return current, ErrLatched
		}
	}
	return current, fmt.Errorf("no transition from %q on %q", current, event)
}
