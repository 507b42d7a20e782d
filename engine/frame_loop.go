package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/status"
)

// FrameLoop advances the world one frame at a time
// All systems run synchronously inside Step; nothing here blocks
type FrameLoop struct {
	world *World
	clock TimeProvider

	lastFrame time.Time
	started   bool
	frame     int64

	statFrames  *atomic.Int64
	statFrameMs *status.AtomicFloat
}

// NewFrameLoop creates a frame loop reading wall time from clock
func NewFrameLoop(world *World, clock TimeProvider) *FrameLoop {
	return &FrameLoop{
		world:       world,
		clock:       clock,
		statFrames:  world.Resource.Status.Ints.Get(status.KeyFrames),
		statFrameMs: world.Resource.Status.Floats.Get(status.KeyFrameMillis),
	}
}

// Step runs one frame using the elapsed clock time as delta
// The first frame after creation or Rebase uses a zero delta
func (fl *FrameLoop) Step() time.Duration {
	now := fl.clock.Now()
	var dt time.Duration
	if fl.started {
		dt = now.Sub(fl.lastFrame)
	}
	fl.lastFrame = now
	fl.started = true

	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	fl.run(now, dt)
	return dt
}

// StepDelta runs one frame with an explicit delta, for headless and test runs
func (fl *FrameLoop) StepDelta(dt time.Duration) {
	fl.run(fl.clock.Now(), dt)
}

// Rebase forgets the last frame time so the next Step starts from zero delta
// Called when leaving a phase in which no frames ran
func (fl *FrameLoop) Rebase() {
	fl.started = false
}

// Frame returns the number of frames executed
func (fl *FrameLoop) Frame() int64 {
	return fl.frame
}

func (fl *FrameLoop) run(now time.Time, dt time.Duration) {
	fl.frame++
	fl.world.Resource.Time.Update(now, dt, fl.frame)

	fl.world.Update()

	fl.statFrames.Store(fl.frame)
	fl.statFrameMs.Store(float64(dt) / float64(time.Millisecond))
}
