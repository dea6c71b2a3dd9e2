package flipper

import (
	"testing"
	"time"

	"github.com/five82/flip/internal/lifecycle"
)

func TestDelayed_FiresAfterDelay(t *testing.T) {
	clk := newClock()
	d := NewDelayed(lifecycle.New(), clk, WithAnimator(nil))
	out, in := newView("out", true), newView("in", false)

	done := false
	d.ScheduleDelayed(out, in, true, func() { done = true })

	clk.Advance(249 * time.Millisecond)
	if done || in.visible {
		t.Fatalf("flip ran before the delay elapsed")
	}
	if !d.Pending() {
		t.Fatalf("Pending = false, want true")
	}

	clk.Advance(time.Millisecond)
	if !done {
		t.Fatalf("done = false at 250ms, want true")
	}
	assertHidden(t, out)
	assertVisible(t, in)
	if d.Pending() {
		t.Fatalf("Pending = true after firing, want false")
	}
}

func TestDelayed_LastScheduleWins(t *testing.T) {
	clk := newClock()
	d := NewDelayed(nil, clk, WithAnimator(nil))
	a, b, c := newView("a", true), newView("b", false), newView("c", false)

	first, second := 0, 0
	d.ScheduleDelayed(a, b, false, func() { first++ })
	clk.Advance(100 * time.Millisecond)
	d.ScheduleDelayed(a, c, false, func() { second++ })

	clk.Advance(150 * time.Millisecond)
	if second != 0 || c.visible {
		t.Fatalf("replacement fired at its predecessor's deadline")
	}

	clk.Advance(100 * time.Millisecond)
	if first != 0 {
		t.Fatalf("superseded done calls = %d, want 0", first)
	}
	if second != 1 {
		t.Fatalf("done calls = %d, want 1", second)
	}
	if b.ever {
		t.Fatalf("superseded target became visible")
	}
	assertVisible(t, c)
	assertHidden(t, a)
}

func TestDelayed_SwapNowCancelsPending(t *testing.T) {
	clk := newClock()
	d := NewDelayed(nil, clk, WithAnimator(nil))
	content, empty := newView("content", true), newView("empty", false)

	delayed := 0
	d.ScheduleDelayed(content, empty, true, func() { delayed++ })
	d.SwapNow(empty, content, false, nil)
	clk.Advance(time.Second)

	if delayed != 0 {
		t.Fatalf("cancelled done calls = %d, want 0", delayed)
	}
	if empty.ever {
		t.Fatalf("empty became visible after cancellation")
	}
	assertVisible(t, content)
	if clk.Pending() != 0 {
		t.Fatalf("Pending timers = %d, want 0", clk.Pending())
	}
}

func TestDelayed_CancelPendingIsIdempotent(t *testing.T) {
	clk := newClock()
	d := NewDelayed(nil, clk)

	d.CancelPending()
	d.ScheduleDelayed(newView("a", true), newView("b", false), true, func() {
		t.Fatalf("cancelled flip ran")
	})
	d.CancelPending()
	d.CancelPending()
	clk.Advance(time.Second)

	if d.Pending() {
		t.Fatalf("Pending = true, want false")
	}
}

func TestDelayed_HiddenOutgoingIsNotAnimated(t *testing.T) {
	tests := []struct {
		name       string
		outVisible bool
		wantFade   bool
	}{
		{name: "visible outgoing animates", outVisible: true, wantFade: true},
		{name: "hidden outgoing does not", outVisible: false, wantFade: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newClock()
			d := NewDelayed(nil, clk)
			out, in := newView("out", tt.outVisible), newView("in", false)

			done := false
			d.SwapNow(out, in, true, func() { done = true })

			if in.faded != tt.wantFade {
				t.Fatalf("faded = %v, want %v", in.faded, tt.wantFade)
			}
			if done == tt.wantFade {
				t.Fatalf("done synchronously = %v, want %v", done, !tt.wantFade)
			}
			clk.Advance(time.Second)
			assertVisible(t, in)
			assertHidden(t, out)
		})
	}
}

func TestDelayed_GuardAppliesAtFireTime(t *testing.T) {
	clk := newClock()
	d := NewDelayed(nil, clk)
	out, in := newView("out", true), newView("in", false)

	d.ScheduleDelayed(out, in, true, nil)
	out.SetVisible(false)
	clk.Advance(DefaultDelay)

	if in.faded {
		t.Fatalf("flip from a hidden view was animated")
	}
	assertVisible(t, in)
}

func TestDelayed_LifecycleDestroyCancelsAndGoesInert(t *testing.T) {
	clk := newClock()
	owner := lifecycle.New()
	d := NewDelayed(owner, clk)
	out, in := newView("out", true), newView("in", false)

	d.ScheduleDelayed(out, in, true, func() { t.Fatalf("pending flip fired after destroy") })
	owner.Destroy()

	if !d.Terminated() {
		t.Fatalf("Terminated = false, want true")
	}
	if owner.Observers() != 0 {
		t.Fatalf("Observers = %d, want 0", owner.Observers())
	}
	clk.Advance(time.Second)

	d.ScheduleDelayed(out, in, false, func() { t.Fatalf("flip scheduled after destroy ran") })
	d.SwapNow(out, in, false, func() { t.Fatalf("swap after destroy ran") })
	clk.Advance(time.Second)

	if in.ever {
		t.Fatalf("visibility changed after destroy")
	}
	assertVisible(t, out)
	if clk.Pending() != 0 {
		t.Fatalf("Pending timers = %d, want 0", clk.Pending())
	}
}

func TestDelayed_CloseSettlesRunningAnimation(t *testing.T) {
	clk := newClock()
	d := NewDelayed(nil, clk)
	out, in := newView("out", true), newView("in", false)

	done := 0
	d.Replace(out, in, func() { done++ })
	clk.Advance(50 * time.Millisecond)
	d.Close()
	d.Close()

	if done != 1 {
		t.Fatalf("done calls = %d, want 1", done)
	}
	assertHidden(t, out)
	assertVisible(t, in)
	if clk.Pending() != 0 {
		t.Fatalf("Pending timers = %d, want 0", clk.Pending())
	}
}

func TestDelayed_SetDelayAppliesToNextSchedule(t *testing.T) {
	clk := newClock()
	d := NewDelayed(nil, clk, WithDelay(100*time.Millisecond), WithAnimator(nil))
	a, b := newView("a", true), newView("b", false)

	d.ScheduleDelayed(a, b, false, nil)
	d.SetDelay(500 * time.Millisecond)
	if d.Delay() != 500*time.Millisecond {
		t.Fatalf("Delay = %v, want 500ms", d.Delay())
	}
	clk.Advance(100 * time.Millisecond)
	assertVisible(t, b)

	d.ScheduleDelayed(b, a, false, nil)
	deadline, ok := d.PendingDeadline()
	if !ok {
		t.Fatalf("PendingDeadline ok = false, want true")
	}
	if want := clk.Now().Add(500 * time.Millisecond); !deadline.Equal(want) {
		t.Fatalf("deadline = %v, want %v", deadline, want)
	}
	clk.Advance(499 * time.Millisecond)
	assertVisible(t, b)
	clk.Advance(time.Millisecond)
	assertVisible(t, a)
}

func TestImmediate_SchedulesRunAtOnce(t *testing.T) {
	s := NewImmediate(nil)
	out, in := newView("out", true), newView("in", false)

	done := false
	s.ScheduleDelayed(out, in, true, func() { done = true })
	s.CancelPending()

	if !done {
		t.Fatalf("done = false, want true")
	}
	assertHidden(t, out)
	assertVisible(t, in)
}
