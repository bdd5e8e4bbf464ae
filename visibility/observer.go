// Package visibility turns fractional "how much of the surface is showing"
// samples into the debounced boolean signal the controller's visibility
// gate consumes. Threshold policy lives here, not in the controller.
package visibility

import "sync"

// DefaultThreshold is the visible fraction at or above which the surface
// counts as visible
const DefaultThreshold = 0.20

// Observer converts visibility samples into edge-triggered notifications
// The surface handle is held opaquely and never examined
type Observer struct {
	mu        sync.Mutex
	surface   any
	threshold float64
	visible   bool
	primed    bool
	sink      func(bool)
}

// NewObserver creates an observer for the given surface
// A threshold <= 0 selects DefaultThreshold; sink receives each visibility
// transition exactly once (repeated identical samples are debounced)
func NewObserver(surface any, threshold float64, sink func(bool)) *Observer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Observer{
		surface:   surface,
		threshold: threshold,
		sink:      sink,
	}
}

// Report feeds one visibility sample in [0,1]; out-of-range values clamp
// The sink is invoked outside the lock on the first sample and on every
// threshold crossing
func (o *Observer) Report(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	o.mu.Lock()
	visible := fraction >= o.threshold
	if o.primed && visible == o.visible {
		o.mu.Unlock()
		return
	}
	o.primed = true
	o.visible = visible
	sink := o.sink
	o.mu.Unlock()

	if sink != nil {
		sink(visible)
	}
}

// IsVisible returns the last derived visibility state
func (o *Observer) IsVisible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// Surface returns the opaque surface handle unchanged
func (o *Observer) Surface() any {
	return o.surface
}
