package controller

import (
	"time"

	"github.com/lixenwraith/carousel/clock"
	"github.com/lixenwraith/carousel/events"
)

const (
	// DefaultSpeed is the per-slide auto-advance duration
	DefaultSpeed = 3 * time.Second

	// TickGranularity is the polling interval of both timers
	TickGranularity = 100 * time.Millisecond
)

// Config holds the immutable per-controller options
// The zero value is not useful on its own; start from DefaultConfig and
// override fields before passing to New
type Config struct {
	// AutoScroll enables the timer subsystem
	AutoScroll bool

	// Loop enables index wraparound at both boundaries
	Loop bool

	// Speed is the per-slide auto-advance duration; values <= 0 disable
	// auto-advance entirely
	Speed time.Duration

	// TotalSlides is the slide count; 0 or 1 disables meaningful navigation
	TotalSlides int

	// OnChange, when set, is invoked after every observable state change
	// with a snapshot taken under the controller lock. It runs outside the
	// lock, so handlers may call back into the controller
	OnChange func(State)

	// Events, when set, receives typed carousel events for router dispatch
	Events *events.Queue

	// Clock overrides the time source; nil selects the monotonic provider
	Clock clock.TimeProvider

	// Tick overrides the timer poll interval; 0 selects TickGranularity
	// Progress derives from elapsed time, so a coarser tick only reduces
	// update frequency, never accuracy
	Tick time.Duration
}

// DefaultConfig returns the recognized option defaults
func DefaultConfig() Config {
	return Config{
		AutoScroll:  false,
		Loop:        true,
		Speed:       DefaultSpeed,
		TotalSlides: 0,
	}
}

// sanitize normalizes out-of-range options instead of rejecting them
func (c Config) sanitize() Config {
	if c.TotalSlides < 0 {
		c.TotalSlides = 0
	}
	if c.Clock == nil {
		c.Clock = clock.NewMonotonicTimeProvider()
	}
	if c.Tick <= 0 {
		c.Tick = TickGranularity
	}
	return c
}
