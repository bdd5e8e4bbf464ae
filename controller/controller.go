package controller

import (
	"sync"
	"time"

	"github.com/lixenwraith/carousel/clock"
	"github.com/lixenwraith/carousel/events"
)

// State is a consistent snapshot of the controller's read state
type State struct {
	CurrentSlide int
	PrevIndex    int
	NextIndex    int

	SlideTimeProgress float64
	TotalProgress     float64
	LoopProgress      float64
	BulletProgress    float64

	Direction Direction
	Phase     Phase
	Visible   bool
}

// Controller owns the index, progress, and timer state of one carousel
//
// Ownership boundaries:
//   - Index state mutates only through advanceLocked
//   - Timer handles are instance-scoped; cancel always precedes start
//   - Timer callbacks carry a generation stamp so a cancelled timer can
//     never mutate state, even when a tick was already in flight
//
// All operations are safe for concurrent use; callbacks and events are
// delivered outside the lock
type Controller struct {
	mu  sync.Mutex
	cfg Config
	clk clock.TimeProvider

	ready    bool
	disposed bool
	visible  bool
	phase    Phase

	currentSlide int
	prevIndex    int
	nextIndex    int
	direction    Direction

	slideTimeProgress float64
	totalProgress     float64
	loopProgress      float64
	bulletProgress    float64

	// Timer epochs; elapsed time is recomputed from these on every tick
	// so accumulation cannot drift or double-count
	slideStart time.Time
	loopStart  time.Time

	slideJob *clock.Job
	loopJob  *clock.Job
	slideGen uint64
	loopGen  uint64
}

// New creates a controller from the given configuration
// The controller starts not-ready and assumed visible; navigation is
// ignored until Start is called
func New(cfg Config) *Controller {
	cfg = cfg.sanitize()
	c := &Controller{
		cfg:     cfg,
		clk:     cfg.Clock,
		visible: true,
	}
	c.advanceLocked(0)
	return c
}

// Start marks the controller ready and arms the timers when permitted
// Calling Start twice, or after Dispose, is a no-op
func (c *Controller) Start() {
	c.mu.Lock()
	if c.disposed || c.ready {
		c.mu.Unlock()
		return
	}
	c.ready = true
	c.recomputeProgressLocked()
	c.startLoopTimerLocked(time.Duration(c.currentSlide) * c.cfg.Speed)
	c.startSlideTimerLocked()
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}
}

// Dispose cancels both timers unconditionally and shuts the controller down
// Every later operation and any still-scheduled tick is suppressed
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.cancelSlideTimerLocked()
	c.cancelLoopTimerLocked()
	c.mu.Unlock()
}

// SetVisible reports the container's visibility and gates the timers
//
// Transition to false cancels both timers and zeroes the slide progress;
// loop progress is retained. Transition to true restarts both timers with
// loop progress re-seeded from the current slide's equivalent elapsed time,
// an approximation of resuming the prior accumulator that is kept on
// purpose. Index state never changes here
func (c *Controller) SetVisible(v bool) {
	c.mu.Lock()
	if c.disposed || v == c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = v
	if v {
		c.goToSlideLocked(c.currentSlide, true)
	} else {
		c.cancelSlideTimerLocked()
		c.cancelLoopTimerLocked()
		c.slideTimeProgress = 0
	}
	c.emitLocked(events.Event{Type: events.TypeVisibilityChanged, Slide: c.currentSlide, Visible: v})
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}
}

// ===== Timer subsystem =====

// timersPermittedLocked reports whether any timer may run right now
func (c *Controller) timersPermittedLocked() bool {
	return c.ready && !c.disposed && c.visible &&
		c.cfg.AutoScroll && c.cfg.Speed > 0 && c.cfg.TotalSlides > 0
}

// startSlideTimerLocked restarts the slide timer from zero
// Cancelling the prior instance first is what prevents double-counting
func (c *Controller) startSlideTimerLocked() {
	c.cancelSlideTimerLocked()
	if !c.timersPermittedLocked() {
		return
	}
	c.slideGen++
	gen := c.slideGen
	c.slideStart = c.clk.Now()
	c.slideTimeProgress = 0
	c.slideJob = clock.StartJob(c.cfg.Tick, func() { c.slideTick(gen) })
}

// startLoopTimerLocked restarts the loop timer with the given elapsed seed
func (c *Controller) startLoopTimerLocked(seed time.Duration) {
	c.cancelLoopTimerLocked()
	if !c.timersPermittedLocked() {
		return
	}
	c.loopGen++
	gen := c.loopGen
	cycle := c.cfg.Speed * time.Duration(c.cfg.TotalSlides)
	c.loopStart = c.clk.Now().Add(-seed)
	c.loopProgress = clampPercent(float64(seed) / float64(cycle) * 100)
	c.loopJob = clock.StartJob(c.cfg.Tick, func() { c.loopTick(gen) })
}

func (c *Controller) cancelSlideTimerLocked() {
	c.slideGen++
	if c.slideJob != nil {
		c.slideJob.Stop()
		c.slideJob = nil
	}
}

func (c *Controller) cancelLoopTimerLocked() {
	c.loopGen++
	if c.loopJob != nil {
		c.loopJob.Stop()
		c.loopJob = nil
	}
}

// slideTick advances the slide timer by one poll interval
// On completion the timer cancels itself, progress resets to zero, and an
// automatic advance fires unless a non-looping deck is on its last slide
func (c *Controller) slideTick(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.slideGen {
		c.mu.Unlock()
		return
	}
	elapsed := c.clk.Now().Sub(c.slideStart)
	progress := float64(elapsed) / float64(c.cfg.Speed) * 100
	if progress < 100 {
		c.slideTimeProgress = progress
		st, cb := c.stateLocked(), c.cfg.OnChange
		c.mu.Unlock()
		if cb != nil {
			cb(st)
		}
		return
	}

	c.cancelSlideTimerLocked()
	c.slideTimeProgress = 0
	advance := c.cfg.Loop || c.currentSlide < c.cfg.TotalSlides-1
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}
	if advance {
		c.nextSlide(true)
	}
}

// loopTick advances the loop timer by one poll interval
// At >= 100 only the epoch resets; the exposed value keeps reading ~100
// until the next tick recomputes from the fresh epoch
func (c *Controller) loopTick(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.loopGen {
		c.mu.Unlock()
		return
	}
	cycle := c.cfg.Speed * time.Duration(c.cfg.TotalSlides)
	elapsed := c.clk.Now().Sub(c.loopStart)
	progress := float64(elapsed) / float64(cycle) * 100
	if progress >= 100 {
		c.loopStart = c.clk.Now()
		c.loopProgress = 100
		c.emitLocked(events.Event{Type: events.TypeLoopCompleted, Slide: c.currentSlide})
	} else {
		c.loopProgress = progress
	}
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}
}

// ===== Read state =====

func (c *Controller) stateLocked() State {
	return State{
		CurrentSlide:      c.currentSlide,
		PrevIndex:         c.prevIndex,
		NextIndex:         c.nextIndex,
		SlideTimeProgress: c.slideTimeProgress,
		TotalProgress:     c.totalProgress,
		LoopProgress:      c.loopProgress,
		BulletProgress:    c.bulletProgress,
		Direction:         c.direction,
		Phase:             c.phase,
		Visible:           c.visible,
	}
}

// Snapshot returns a consistent copy of all exposed read state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// CurrentSlide returns the active slide index
func (c *Controller) CurrentSlide() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentSlide
}

// Phase returns the controller's transition phase
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// IsVisible returns the last reported visibility state
func (c *Controller) IsVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *Controller) emitLocked(ev events.Event) {
	if c.cfg.Events != nil {
		c.cfg.Events.Push(ev)
	}
}
