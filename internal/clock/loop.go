package clock

import (
	"sync"
	"time"
)

// Loop is a wall-clock Clock for event-loop hosts. Timers fire on runtime
// goroutines but only post their callback to Tasks; the host goroutine
// executes it. Stop is expected on the host goroutine, and a stopped
// timer never runs even when its wake-up is already queued.
type Loop struct {
	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates a Loop whose task channel holds up to buffer wake-ups.
func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Now returns the wall-clock time.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc arms fn to be delivered on Tasks after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{fn: fn}
	t.timer = time.AfterFunc(d, func() {
		select {
		case l.tasks <- t.run:
		case <-l.done:
		}
	})
	return t
}

// Tasks is drained by the host goroutine; each received func must be called.
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Close stops delivering wake-ups. Timers that fire afterwards are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

type loopTimer struct {
	timer   *time.Timer
	fn      func()
	stopped bool
	fired   bool
}

func (t *loopTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

func (t *loopTimer) run() {
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.fn()
}
