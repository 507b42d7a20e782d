package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orf-cloud/parameter"
)

// CuePlayer plays pipeline cues through the system speaker
// A player that failed to initialize stays silent; Play never errors
type CuePlayer struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [cueCount]time.Time
	now         func() time.Time
	sink        func(beep.Streamer)
}

// NewCuePlayer creates a player; call Initialize to open the speaker
func NewCuePlayer(cfg Config) *CuePlayer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	p := &CuePlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
		now:   time.Now,
	}
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p
}

// Initialize opens the speaker; a returned error leaves the player silent
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferWindow)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue unless muted, uninitialized, or played within the cue gap
func (p *CuePlayer) Play(cue CueType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || cue < 0 || cue >= cueCount {
		return false
	}

	now := p.now()
	if last := p.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < parameter.AudioCueGap {
		return false
	}

	s := CueStreamer(cue, p.cfg)
	if s == nil {
		return false
	}
	p.lastPlayed[cue] = now
	p.sink(s)
	return true
}

// ToggleMute flips mute and returns true when sound is now on
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Enabled reports whether cues are audible
func (p *CuePlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}

// Cleanup drops queued cues; the speaker itself has no close
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
