package flipper

import (
	"time"

	"github.com/five82/flip/internal/clock"
)

const (
	// DefaultFadeDuration matches the default flip delay so a delayed flip
	// and its entrance animation line up.
	DefaultFadeDuration = 250 * time.Millisecond

	frameInterval = 16 * time.Millisecond
)

// Animator animates a flip between two views.
type Animator interface {
	// AnimateFlip ends any running animation, shows both views and fades
	// out into in. When the fade settles out is hidden and done is called.
	AnimateFlip(out, in View, done func())
	// End jumps a running animation to its final state, running its done.
	End()
	Running() bool
	Duration() time.Duration
	SetDuration(d time.Duration)
}

// CrossFade is the default Animator. It steps alpha on clock frames.
type CrossFade struct {
	clock    clock.Clock
	duration time.Duration
	run      *fade
}

type fade struct {
	out, in View
	start   time.Time
	timer   clock.Timer
	done    func()
}

// NewCrossFade returns a CrossFade driven by clk.
func NewCrossFade(clk clock.Clock) *CrossFade {
	return &CrossFade{clock: clk, duration: DefaultFadeDuration}
}

// AnimateFlip implements Animator.
func (c *CrossFade) AnimateFlip(out, in View, done func()) {
	c.End()

	out.SetVisible(true)
	in.SetVisible(true)
	setAlpha(out, 1)
	setAlpha(in, 0)

	f := &fade{out: out, in: in, start: c.clock.Now(), done: done}
	c.run = f
	if c.duration <= 0 {
		c.finish(f)
		return
	}
	c.schedule(f, 0)
}

// End implements Animator.
func (c *CrossFade) End() {
	if c.run != nil {
		c.finish(c.run)
	}
}

// Running implements Animator.
func (c *CrossFade) Running() bool {
	return c.run != nil
}

// Duration implements Animator.
func (c *CrossFade) Duration() time.Duration {
	return c.duration
}

// SetDuration implements Animator. It applies to the next flip.
func (c *CrossFade) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.duration = d
}

func (c *CrossFade) schedule(f *fade, elapsed time.Duration) {
	next := frameInterval
	if remaining := c.duration - elapsed; remaining < next {
		next = remaining
	}
	f.timer = c.clock.AfterFunc(next, func() { c.step(f) })
}

func (c *CrossFade) step(f *fade) {
	if c.run != f {
		return
	}
	elapsed := c.clock.Now().Sub(f.start)
	if elapsed >= c.duration {
		c.finish(f)
		return
	}
	p := float64(elapsed) / float64(c.duration)
	setAlpha(f.out, 1-p)
	setAlpha(f.in, p)
	c.schedule(f, elapsed)
}

func (c *CrossFade) finish(f *fade) {
	if f.timer != nil {
		f.timer.Stop()
	}
	c.run = nil

	f.out.SetVisible(false)
	setAlpha(f.out, 1)
	setAlpha(f.in, 1)
	if f.done != nil {
		f.done()
	}
}
