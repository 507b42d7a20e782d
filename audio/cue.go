package audio

import (
	"github.com/lixenwraith/orf-cloud/parameter"
)

// CueType identifies a pipeline event that has a sound
type CueType int

const (
	CueSpawn     CueType = iota // Batch fired
	CueEvict                    // Capacity evictor removed objects
	CueExhausted                // Drain queue ran dry
	cueCount
)

func (c CueType) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueEvict:
		return "evict"
	case CueExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// DefaultConfig returns audio disabled at the stock volume
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}
