package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's delta after stalls (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// PhysicsSubsteps splits each frame's integration step
	PhysicsSubsteps = 2

	// EventChannelSize is the buffered capacity of the terminal input channel
	EventChannelSize = 256
)
