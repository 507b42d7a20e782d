package pipeline

import "time"

// TimerState is the spawn timer lifecycle
type TimerState uint8

const (
	TimerIdle  TimerState = iota // Not armed, never fires
	TimerArmed                   // Counting down
	TimerDone                    // Finished; fires on every tick from here on
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerArmed:
		return "armed"
	case TimerDone:
		return "done"
	default:
		return "unknown"
	}
}

// TimerMode selects what happens once the countdown completes
type TimerMode uint8

const (
	// TimerOnce finishes forever and fires every subsequent tick
	TimerOnce TimerMode = iota
	// TimerRepeating fires once per elapsed interval, then re-arms
	TimerRepeating
)

// SpawnTimer gates batch release
type SpawnTimer struct {
	state     TimerState
	mode      TimerMode
	interval  time.Duration
	remaining time.Duration
}

// NewSpawnTimer creates an idle timer
func NewSpawnTimer(interval time.Duration, mode TimerMode) SpawnTimer {
	return SpawnTimer{
		state:    TimerIdle,
		mode:     mode,
		interval: interval,
	}
}

// Arm starts the countdown; only valid from Idle, later calls are ignored
func (t *SpawnTimer) Arm() {
	if t.state != TimerIdle {
		return
	}
	t.state = TimerArmed
	t.remaining = t.interval
}

// Tick advances by dt and reports whether a fire happens on this tick
// Completion tick fires too
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	switch t.state {
	case TimerArmed:
		t.remaining -= dt
		if t.remaining > 0 {
			return false
		}
		if t.mode == TimerOnce {
			t.state = TimerDone
			t.remaining = 0
			return true
		}
		t.remaining += t.interval
		if t.remaining <= 0 {
			t.remaining = t.interval
		}
		return true
	case TimerDone:
		return true
	default:
		return false
	}
}

// State returns the current lifecycle state
func (t *SpawnTimer) State() TimerState {
	return t.state
}

// Remaining returns time left in the current countdown, 0 unless Armed
func (t *SpawnTimer) Remaining() time.Duration {
	if t.state != TimerArmed {
		return 0
	}
	return t.remaining
}
