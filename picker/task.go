// Package picker loads an operator-chosen genome file off the frame loop
package picker

import (
	"context"
	"sync"

	"github.com/lixenwraith/orf-cloud/core"
)

// Status is the poll outcome of a Task
type Status uint8

const (
	StatusIdle     Status = iota // Nothing started, or result already taken
	StatusPending                // Read in progress
	StatusFinished               // Data ready, delivered on this poll only
	StatusFailed                 // Read failed, delivered on this poll only
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusFinished:
		return "finished"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is returned from Poll
type Result struct {
	Status Status
	Path   string
	Data   []byte
	Err    error
}

// ReadFunc loads the bytes at path
type ReadFunc func(ctx context.Context, path string) ([]byte, error)

// Task runs one file read at a time and is polled once per menu frame
// Starting a new read or cancelling discards the in-flight one
type Task struct {
	mu     sync.Mutex
	read   ReadFunc
	cancel context.CancelFunc
	done   chan Result
	path   string
}

// NewTask creates an idle task using ReadGenomeFile
func NewTask() *Task {
	return NewTaskWithReader(ReadGenomeFile)
}

// NewTaskWithReader creates an idle task with a custom reader
func NewTaskWithReader(read ReadFunc) *Task {
	return &Task{read: read}
}

// Start begins reading path, cancelling any read already running
func (t *Task) Start(ctx context.Context, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan Result, 1)
	t.cancel = cancel
	t.done = done
	t.path = path

	read := t.read
	core.Go(func() {
		data, err := read(ctx, path)
		res := Result{Status: StatusFinished, Path: path, Data: data}
		if err != nil {
			res = Result{Status: StatusFailed, Path: path, Err: err}
		}
		done <- res
	})
}

// Poll never blocks; a terminal result is returned exactly once
func (t *Task) Poll() Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done == nil {
		return Result{Status: StatusIdle}
	}
	select {
	case res := <-t.done:
		t.cancel()
		t.cancel = nil
		t.done = nil
		t.path = ""
		return res
	default:
		return Result{Status: StatusPending, Path: t.path}
	}
}

// Cancel abandons the in-flight read; its result is never delivered
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Pending reports whether a read is in flight
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done != nil
}

func (t *Task) stopLocked() {
	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = nil
	t.done = nil
	t.path = ""
}
