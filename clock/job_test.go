package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestJobFiresPeriodically(t *testing.T) {
	var count atomic.Int32
	j := StartJob(10*time.Millisecond, func() { count.Add(1) })
	defer j.Stop()

	time.Sleep(120 * time.Millisecond)
	if got := count.Load(); got < 5 {
		t.Errorf("job fired %d times in 120ms at 10ms interval, want >= 5", got)
	}
	if !j.IsRunning() {
		t.Error("job should report running before Stop")
	}
}

func TestJobStopHaltsTicks(t *testing.T) {
	var count atomic.Int32
	j := StartJob(5*time.Millisecond, func() { count.Add(1) })

	time.Sleep(30 * time.Millisecond)
	j.Stop()
	j.Wait()

	frozen := count.Load()
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != frozen {
		t.Errorf("job fired after Stop: %d -> %d", frozen, got)
	}
	if j.IsRunning() {
		t.Error("job should not report running after Stop")
	}
}

func TestJobStopIdempotent(t *testing.T) {
	j := StartJob(time.Hour, func() {})
	j.Stop()
	j.Stop() // must not panic
	j.Wait()
}

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()
	a := p.Now()
	b := p.Now()
	if b.Before(a) {
		t.Error("monotonic provider went backwards")
	}
}

func TestManualClockFrozenUntilAdvanced(t *testing.T) {
	epoch := time.Unix(1000, 0)
	m := NewManualClock(epoch)

	if !m.Now().Equal(epoch) {
		t.Errorf("Now() = %v, want epoch %v", m.Now(), epoch)
	}
	if !m.Now().Equal(m.Now()) {
		t.Error("manual clock moved without Advance")
	}

	m.Advance(3 * time.Second)
	if want := epoch.Add(3 * time.Second); !m.Now().Equal(want) {
		t.Errorf("after Advance: Now() = %v, want %v", m.Now(), want)
	}
	if m.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", m.Elapsed())
	}
}

func TestManualClockAdvanceAccumulates(t *testing.T) {
	m := NewManualClock(time.Unix(0, 0))
	for i := 0; i < 10; i++ {
		m.Advance(100 * time.Millisecond)
	}
	if m.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, want 1s after ten 100ms steps", m.Elapsed())
	}

	m.Advance(-time.Hour)
	if m.Elapsed() != time.Second {
		t.Errorf("negative Advance changed Elapsed to %v", m.Elapsed())
	}
}

func TestManualClockSet(t *testing.T) {
	epoch := time.Unix(1000, 0)
	m := NewManualClock(epoch)

	target := time.Unix(5000, 0)
	m.Set(target)
	if !m.Now().Equal(target) {
		t.Errorf("after Set: Now() = %v, want %v", m.Now(), target)
	}

	m.Set(epoch.Add(-time.Hour))
	if !m.Now().Equal(epoch) {
		t.Errorf("Set before epoch: Now() = %v, want clamp to epoch %v", m.Now(), epoch)
	}
}
