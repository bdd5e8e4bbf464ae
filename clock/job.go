package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Job runs a callback on a fixed tick until stopped
// One Job instance drives exactly one periodic concern; owners that need
// restart semantics stop the old instance and start a fresh one
type Job struct {
	interval time.Duration
	fn       func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// StartJob creates a job and starts its tick loop immediately
// The callback runs on the job's own goroutine, once per interval, and
// never again after Stop returns the stop signal
func StartJob(interval time.Duration, fn func()) *Job {
	j := &Job{
		interval: interval,
		fn:       fn,
		stopChan: make(chan struct{}),
	}
	j.running.Store(true)
	j.wg.Add(1)
	go j.run()
	return j
}

func (j *Job) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ticker.C:
			// Re-check stop before firing: a tick and a stop can race
			// inside select, and a stopped job must not call back
			select {
			case <-j.stopChan:
				return
			default:
			}
			j.fn()
		}
	}
}

// Stop cancels the job, safe to call multiple times
// After Stop, no further ticks are delivered; a callback already executing
// is the owner's responsibility to suppress (generation stamping)
func (j *Job) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
		j.running.Store(false)
	})
}

// IsRunning reports whether the job has not been stopped
func (j *Job) IsRunning() bool {
	return j.running.Load()
}

// Wait blocks until the job's goroutine has exited
func (j *Job) Wait() {
	j.wg.Wait()
}
