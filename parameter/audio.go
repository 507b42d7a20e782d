package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	AudioMasterVolume = 0.5

	// AudioCueGap is the minimum spacing between two plays of the same cue
	AudioCueGap = 120 * time.Millisecond
)

// Cue shapes
const (
	SpawnCueDuration = 90 * time.Millisecond
	SpawnCueAttack   = 5 * time.Millisecond
	SpawnCueRelease  = 60 * time.Millisecond

	EvictCueDuration = 40 * time.Millisecond
	EvictCueAttack   = 2 * time.Millisecond
	EvictCueRelease  = 30 * time.Millisecond

	ExhaustedCueNoteDuration = 140 * time.Millisecond
	ExhaustedCueAttack       = 10 * time.Millisecond
	ExhaustedCueRelease      = 100 * time.Millisecond
)
