package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually advanced clock for tests and headless runs
type MockTimeProvider struct {
	nanos atomic.Int64
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.nanos.Store(start.UnixNano())
	return m
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return time.Unix(0, m.nanos.Load())
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return time.Unix(0, m.nanos.Add(int64(d)))
}
