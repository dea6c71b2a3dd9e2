// Package lifecycle models the owner of a screen: something that is destroyed
// exactly once and tells its observers when that happens.
package lifecycle

import (
	"sync"

	"go.uber.org/atomic"
)

// Lifecycle is a source of a single terminal "destroyed" event.
type Lifecycle interface {
	// Observe registers fn to run when the lifecycle is destroyed. If it is
	// already destroyed fn runs immediately and the returned subscription
	// is already disposed.
	Observe(fn func()) *Subscription
}

// Owner is the default Lifecycle. Destroy must be called from the goroutine
// that owns the observing UI state; Destroyed may be read from anywhere.
type Owner struct {
	mu        sync.Mutex
	observers []*Subscription
	destroyed atomic.Bool
}

var _ Lifecycle = (*Owner)(nil)

// New returns a live Owner.
func New() *Owner {
	return &Owner{}
}

// Observe implements Lifecycle.
func (o *Owner) Observe(fn func()) *Subscription {
	sub := &Subscription{owner: o, fn: fn}
	if o.destroyed.Load() {
		sub.disposed = true
		if fn != nil {
			fn()
		}
		return sub
	}

	o.mu.Lock()
	o.observers = append(o.observers, sub)
	o.mu.Unlock()
	return sub
}

// Destroy fires the terminal event. Observers run in registration order;
// later calls do nothing.
func (o *Owner) Destroy() {
	if !o.destroyed.CompareAndSwap(false, true) {
		return
	}

	o.mu.Lock()
	observers := o.observers
	o.observers = nil
	o.mu.Unlock()

	for _, sub := range observers {
		if sub.disposed {
			continue
		}
		sub.disposed = true
		if sub.fn != nil {
			sub.fn()
		}
	}
}

// Destroyed reports whether Destroy has been called.
func (o *Owner) Destroyed() bool {
	return o.destroyed.Load()
}

// Observers returns the number of live subscriptions.
func (o *Owner) Observers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.observers)
}

func (o *Owner) remove(sub *Subscription) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, s := range o.observers {
		if s == sub {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// Subscription is a handle to a registered observer.
type Subscription struct {
	owner    *Owner
	fn       func()
	disposed bool
}

// Dispose detaches the observer. It is safe to call more than once.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.owner != nil {
		s.owner.remove(s)
	}
}

// Disposed reports whether the observer is detached.
func (s *Subscription) Disposed() bool {
	return s == nil || s.disposed
}
