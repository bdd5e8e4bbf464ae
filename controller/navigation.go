package controller

import (
	"time"

	"github.com/lixenwraith/carousel/events"
)

// NextSlide advances forward by one slide and restarts the slide timer
//
// Re-entrancy is guarded by the phase state: invocations while a transition
// is still dispatching are no-ops. On a non-looping deck already at the last
// slide the index holds, the slide timer cancels, and the slide progress is
// pinned at 100
func (c *Controller) NextSlide() {
	c.nextSlide(false)
}

func (c *Controller) nextSlide(auto bool) {
	c.mu.Lock()
	if !c.operableLocked() || c.phase != PhaseIdle {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseTransitioning
	total := c.cfg.TotalSlides

	if !c.cfg.Loop && c.currentSlide >= total-1 {
		c.cancelSlideTimerLocked()
		c.slideTimeProgress = 100
		c.phase = PhaseIdle
		c.emitLocked(events.Event{
			Type:     events.TypeBoundaryReached,
			Slide:    c.currentSlide,
			Previous: c.currentSlide,
			Auto:     auto,
		})
		st, cb := c.stateLocked(), c.cfg.OnChange
		c.mu.Unlock()
		if cb != nil {
			cb(st)
		}
		return
	}

	target := c.currentSlide + 1
	if c.cfg.Loop {
		target %= total
	}
	prev := c.currentSlide
	c.direction = DirectionNext
	c.advanceLocked(target)
	c.startSlideTimerLocked()
	if target != prev {
		c.emitLocked(events.Event{
			Type:     events.TypeSlideChanged,
			Slide:    target,
			Previous: prev,
			Forward:  true,
			Auto:     auto,
		})
	}
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}

	c.mu.Lock()
	c.phase = PhaseIdle
	c.mu.Unlock()
}

// PrevSlide moves back by one slide and restarts the slide timer
//
// Unlike NextSlide there is no short-circuit at the first slide of a
// non-looping deck: the index clamps at zero and the timer still restarts
func (c *Controller) PrevSlide() {
	c.mu.Lock()
	if !c.operableLocked() {
		c.mu.Unlock()
		return
	}
	total := c.cfg.TotalSlides

	var target int
	if c.cfg.Loop {
		target = (c.currentSlide - 1 + total) % total
	} else {
		target = max(c.currentSlide-1, 0)
	}
	prev := c.currentSlide
	c.direction = DirectionPrev
	c.advanceLocked(target)
	c.startSlideTimerLocked()
	if target != prev {
		c.emitLocked(events.Event{
			Type:     events.TypeSlideChanged,
			Slide:    target,
			Previous: prev,
			Forward:  false,
		})
	}
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}
}

// GoToSlide jumps to an arbitrary slide and restarts both timers
//
// Jumping to the current slide is a no-op. Out-of-range targets are wrapped
// (looping) or clamped (non-looping), never rejected. Direction compares the
// requested index against the current one before normalization. The loop
// timer resumes seeded at the target slide's equivalent elapsed time
func (c *Controller) GoToSlide(index int) {
	c.mu.Lock()
	if !c.goToSlideLocked(index, false) {
		c.mu.Unlock()
		return
	}
	st, cb := c.stateLocked(), c.cfg.OnChange
	c.mu.Unlock()
	if cb != nil {
		cb(st)
	}
}

// goToSlideLocked implements GoToSlide; force bypasses the equal-index
// short-circuit so visibility restore can re-seed the timers without
// touching index state. Returns false when nothing happened
func (c *Controller) goToSlideLocked(index int, force bool) bool {
	if !c.operableLocked() {
		return false
	}
	if index == c.currentSlide && !force {
		return false
	}
	total := c.cfg.TotalSlides

	c.cancelSlideTimerLocked()
	c.cancelLoopTimerLocked()

	if index != c.currentSlide {
		if index > c.currentSlide {
			c.direction = DirectionNext
		} else {
			c.direction = DirectionPrev
		}
	}

	target := index
	if c.cfg.Loop {
		target = ((index % total) + total) % total
	} else if target < 0 {
		target = 0
	} else if target >= total {
		target = total - 1
	}

	prev := c.currentSlide
	c.advanceLocked(target)
	if target != prev {
		c.emitLocked(events.Event{
			Type:     events.TypeSlideChanged,
			Slide:    target,
			Previous: prev,
			Forward:  c.direction == DirectionNext,
		})
	}

	c.startLoopTimerLocked(time.Duration(target) * c.cfg.Speed)
	c.startSlideTimerLocked()
	return true
}

// advanceLocked is the sole mutator of index state
// Neighbor indices are always recomputed from the new current index and the
// loop policy, never adjusted independently
func (c *Controller) advanceLocked(to int) {
	total := c.cfg.TotalSlides
	c.currentSlide = to
	switch {
	case total <= 0:
		c.prevIndex, c.nextIndex = 0, 0
	case c.cfg.Loop:
		c.prevIndex = (to - 1 + total) % total
		c.nextIndex = (to + 1) % total
	default:
		c.prevIndex = max(to-1, 0)
		c.nextIndex = min(to+1, total-1)
	}
	c.recomputeProgressLocked()
}

// operableLocked reports whether navigation is currently honored
func (c *Controller) operableLocked() bool {
	return c.ready && !c.disposed && c.cfg.TotalSlides > 0
}
