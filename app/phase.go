package app

import "errors"

// Phase is the top-level application state
type Phase uint8

const (
	PhaseMenu Phase = iota // Settings panel, no pipeline exists
	PhaseRun               // Pipeline streaming into the scene
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRun:
		return "run"
	default:
		return "unknown"
	}
}

// ErrNoGenomeData rejects a start with a custom genome that has no bytes yet
var ErrNoGenomeData = errors.New("no genome data")
