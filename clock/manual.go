package clock

import (
	"sync"
	"time"
)

// ManualClock is a TimeProvider whose time moves only when a test moves it
// Timer progress derives entirely from elapsed time against the injected
// clock, so a test advances the clock and delivers ticks by hand to walk
// the timers through any schedule deterministically
type ManualClock struct {
	mu      sync.Mutex
	epoch   time.Time
	elapsed time.Duration
}

// NewManualClock creates a manual clock frozen at the given epoch
func NewManualClock(epoch time.Time) *ManualClock {
	return &ManualClock{epoch: epoch}
}

// Now returns the epoch plus everything advanced so far
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch.Add(m.elapsed)
}

// Advance moves the clock forward by d; negative values are ignored
func (m *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed += d
}

// Elapsed returns the total time advanced since the epoch
func (m *ManualClock) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Set jumps the clock to an absolute time at or after the epoch
// Times before the epoch freeze the clock at the epoch instead
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed = max(t.Sub(m.epoch), 0)
}
