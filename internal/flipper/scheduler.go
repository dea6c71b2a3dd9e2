package flipper

// Scheduler is the capability the state machines flip through.
type Scheduler interface {
	// ScheduleDelayed replaces any pending flip with out->in, to run after
	// the scheduler's delay. done runs only if the flip is not superseded.
	ScheduleDelayed(out, in View, animate bool, done func())
	// CancelPending drops the pending flip without running it.
	CancelPending()
	// SwapNow cancels any pending flip and flips out->in right away.
	SwapNow(out, in View, animate bool, done func())
}

// Immediate is a Scheduler without a delay: every flip runs at once.
type Immediate struct {
	flipper *Flipper
}

var _ Scheduler = (*Immediate)(nil)

// NewImmediate returns an Immediate scheduler flipping through animator.
func NewImmediate(animator Animator) *Immediate {
	return &Immediate{flipper: New(animator)}
}

// ScheduleDelayed implements Scheduler by flipping immediately.
func (s *Immediate) ScheduleDelayed(out, in View, animate bool, done func()) {
	s.SwapNow(out, in, animate, done)
}

// CancelPending implements Scheduler; nothing is ever pending.
func (s *Immediate) CancelPending() {}

// SwapNow implements Scheduler.
func (s *Immediate) SwapNow(out, in View, animate bool, done func()) {
	s.flipper.replace(out, in, animate, done)
}
