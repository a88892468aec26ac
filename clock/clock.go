// Package clock provides the time sources and the cooperative tick scheduler
// that drive the game loop.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time. Everything that reads time in the engine
// goes through a Clock so tests can substitute a Manual clock.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now, monotonic reading included.
type System struct{}

// Now returns the current wall clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a controllable Clock for tests and headless runs.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a manual clock positioned at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
