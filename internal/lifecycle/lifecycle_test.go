package lifecycle

import "testing"

func TestOwner_DestroyNotifiesObserversOnce(t *testing.T) {
	o := New()
	var order []int
	o.Observe(func() { order = append(order, 1) })
	o.Observe(func() { order = append(order, 2) })

	o.Destroy()
	o.Destroy()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("notifications = %v, want [1 2]", order)
	}
	if !o.Destroyed() {
		t.Fatal("Destroyed() = false after Destroy")
	}
	if o.Observers() != 0 {
		t.Fatalf("Observers = %d, want 0 after Destroy", o.Observers())
	}
}

func TestSubscription_DisposeDetaches(t *testing.T) {
	o := New()
	called := false
	sub := o.Observe(func() { called = true })

	sub.Dispose()
	sub.Dispose()
	if !sub.Disposed() {
		t.Fatal("Disposed() = false after Dispose")
	}
	if o.Observers() != 0 {
		t.Fatalf("Observers = %d, want 0", o.Observers())
	}

	o.Destroy()
	if called {
		t.Fatal("disposed observer was notified")
	}
}

func TestOwner_ObserveAfterDestroyRunsImmediately(t *testing.T) {
	o := New()
	o.Destroy()

	called := false
	sub := o.Observe(func() { called = true })
	if !called {
		t.Fatal("observer registered after Destroy was not run")
	}
	if !sub.Disposed() {
		t.Fatal("subscription should be disposed when owner is already destroyed")
	}
}

func TestOwner_ObserverDisposedDuringDestroyIsSkipped(t *testing.T) {
	o := New()
	var second *Subscription
	secondCalled := false

	o.Observe(func() { second.Dispose() })
	second = o.Observe(func() { secondCalled = true })

	o.Destroy()
	if secondCalled {
		t.Fatal("observer disposed by an earlier observer still ran")
	}
}
