package system

import (
	"github.com/lixenwraith/orf-cloud/audio"
)

// CueSink receives pipeline sound cues; nil disables cues
type CueSink interface {
	Play(cue audio.CueType) bool
}

func playCue(sink CueSink, cue audio.CueType) {
	if sink != nil {
		sink.Play(cue)
	}
}
