package engine

import (
	"time"

	"github.com/lixenwraith/orf-cloud/status"
)

// Resource holds singleton frame resources, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	View   *ViewResource
	Status *status.Registry
}

func newResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		View:   &ViewResource{},
		Status: status.NewRegistry(),
	}
}

// TimeResource wraps time data for systems
// It is updated by the FrameLoop at the start of a frame
type TimeResource struct {
	// RealTime is the wall-clock time of the frame start
	RealTime time.Time

	// DeltaTime is the duration since the last frame, capped
	DeltaTime time.Duration

	// FrameNumber is the current frame count, 1 for the first frame
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ViewResource holds the viewport size in terminal cells
// Visibility is computed against it; the renderer keeps it in sync with resizes
type ViewResource struct {
	Width  int
	Height int
}
