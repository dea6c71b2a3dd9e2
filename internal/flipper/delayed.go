package flipper

import (
	"io"
	"log/slog"
	"time"

	"github.com/five82/flip/internal/clock"
	"github.com/five82/flip/internal/lifecycle"
)

// DefaultDelay is how long a delayed flip waits before running.
const DefaultDelay = 250 * time.Millisecond

// Option configures a Delayed scheduler.
type Option func(*options)

type options struct {
	delay       time.Duration
	animator    Animator
	animatorSet bool
	logger      *slog.Logger
}

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithAnimator replaces the default CrossFade. A nil animator disables
// animation.
func WithAnimator(a Animator) Option {
	return func(o *options) {
		o.animator = a
		o.animatorSet = true
	}
}

// WithLogger sets the logger for scheduling decisions.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Delayed is a single-slot delay scheduler bound to a lifecycle. At most one
// flip is pending; scheduling another, or flipping immediately, cancels it.
type Delayed struct {
	flipper    *Flipper
	clock      clock.Clock
	delay      time.Duration
	pending    *pendingSwap
	sub        *lifecycle.Subscription
	terminated bool
	log        *slog.Logger
}

type pendingSwap struct {
	out, in View
	animate bool
	fireAt  time.Time
	done    func()
	timer   clock.Timer
}

var _ Scheduler = (*Delayed)(nil)

// NewDelayed returns a Delayed scheduler firing on clk. When lc is
// destroyed the pending flip is cancelled and the scheduler goes inert.
func NewDelayed(lc lifecycle.Lifecycle, clk clock.Clock, opts ...Option) *Delayed {
	o := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	animator := o.animator
	if !o.animatorSet {
		animator = NewCrossFade(clk)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := &Delayed{
		flipper: New(animator),
		clock:   clk,
		delay:   o.delay,
		log:     logger,
	}
	if lc != nil {
		d.sub = lc.Observe(func() { d.teardown("lifecycle destroyed") })
	}
	return d
}

// Delay returns the delay applied to the next scheduled flip.
func (d *Delayed) Delay() time.Duration {
	return d.delay
}

// SetDelay changes the delay. Flips already pending keep their deadline.
func (d *Delayed) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	d.delay = delay
}

// Flipper exposes the underlying swap primitive, e.g. to tune its animator.
func (d *Delayed) Flipper() *Flipper {
	return d.flipper
}

// Pending reports whether a delayed flip is armed.
func (d *Delayed) Pending() bool {
	return d.pending != nil
}

// PendingDeadline returns when the pending flip fires.
func (d *Delayed) PendingDeadline() (time.Time, bool) {
	if d.pending == nil {
		return time.Time{}, false
	}
	return d.pending.fireAt, true
}

// Terminated reports whether the scheduler was torn down.
func (d *Delayed) Terminated() bool {
	return d.terminated
}

// ScheduleDelayed implements Scheduler.
func (d *Delayed) ScheduleDelayed(out, in View, animate bool, done func()) {
	d.CancelPending()
	if d.terminated || out == nil || in == nil {
		return
	}

	p := &pendingSwap{
		out:     out,
		in:      in,
		animate: animate,
		fireAt:  d.clock.Now().Add(d.delay),
		done:    done,
	}
	p.timer = d.clock.AfterFunc(d.delay, func() { d.fire(p) })
	d.pending = p
	d.log.Debug("flip scheduled", "delay", d.delay, "animate", animate)
}

// CancelPending implements Scheduler.
func (d *Delayed) CancelPending() {
	if d.pending == nil {
		return
	}
	d.pending.timer.Stop()
	d.pending = nil
	d.log.Debug("pending flip cancelled")
}

// SwapNow implements Scheduler.
func (d *Delayed) SwapNow(out, in View, animate bool, done func()) {
	d.swap(out, in, animate, done)
}

// Replace flips immediately with animation.
func (d *Delayed) Replace(out, in View, done func()) {
	d.swap(out, in, true, done)
}

// ReplaceNoAnimation flips immediately without animation.
func (d *Delayed) ReplaceNoAnimation(out, in View, done func()) {
	d.swap(out, in, false, done)
}

// Close tears the scheduler down as if its lifecycle was destroyed.
func (d *Delayed) Close() {
	d.teardown("closed")
}

func (d *Delayed) fire(p *pendingSwap) {
	if d.pending != p {
		return
	}
	d.pending = nil
	d.log.Debug("pending flip fired", "animate", p.animate)
	d.swap(p.out, p.in, p.animate, p.done)
}

// swap is the only path to the primitive. A hidden outgoing view is never
// animated, since nobody would see it fade.
func (d *Delayed) swap(out, in View, animate bool, done func()) {
	d.CancelPending()
	if d.terminated || out == nil || in == nil {
		return
	}
	d.flipper.EndAnimation()
	d.flipper.replace(out, in, animate && out.Visible(), done)
}

func (d *Delayed) teardown(reason string) {
	if d.terminated {
		return
	}
	d.terminated = true
	d.CancelPending()
	d.flipper.EndAnimation()
	d.sub.Dispose()
	d.log.Debug("flip scheduler terminated", "reason", reason)
}
