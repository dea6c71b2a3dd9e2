package flipper

import (
	"testing"
	"time"
)

func TestFlipper_ReplaceNoAnimationSwapsAtOnce(t *testing.T) {
	out, in := newView("out", true), newView("in", false)
	f := New(NewCrossFade(newClock()))

	calls := 0
	f.ReplaceNoAnimation(out, in, func() { calls++ })

	assertHidden(t, out)
	assertVisible(t, in)
	if calls != 1 {
		t.Fatalf("done calls = %d, want 1", calls)
	}
	if in.faded {
		t.Fatalf("in faded = true, want false")
	}
}

func TestFlipper_NilViewsSkipDone(t *testing.T) {
	f := New(nil)
	calls := 0
	f.Replace(nil, newView("in", false), func() { calls++ })
	f.Replace(newView("out", true), nil, func() { calls++ })
	if calls != 0 {
		t.Fatalf("done calls = %d, want 0", calls)
	}
}

func TestFlipper_AlreadyInPlaceCompletes(t *testing.T) {
	out, in := newView("out", false), newView("in", true)
	f := New(NewCrossFade(newClock()))

	calls := 0
	f.Replace(out, in, func() { calls++ })

	if calls != 1 {
		t.Fatalf("done calls = %d, want 1", calls)
	}
	if in.shows != 0 || out.hides != 0 {
		t.Fatalf("visibility changed for an in-place flip: shows=%d hides=%d", in.shows, out.hides)
	}
}

func TestFlipper_NilAnimatorIsImmediate(t *testing.T) {
	out, in := newView("out", true), newView("in", false)
	f := New(nil)

	done := false
	f.Replace(out, in, func() { done = true })

	if !done {
		t.Fatalf("done = false, want true")
	}
	assertHidden(t, out)
	assertVisible(t, in)
}

func TestCrossFade_FadesThenHidesOutgoing(t *testing.T) {
	clk := newClock()
	out, in := newView("out", true), newView("in", false)
	f := New(NewCrossFade(clk))

	done := false
	f.Replace(out, in, func() { done = true })

	clk.Advance(100 * time.Millisecond)
	assertVisible(t, out, in)
	if in.alpha <= 0 || in.alpha >= 1 {
		t.Fatalf("in alpha = %v, want between 0 and 1", in.alpha)
	}
	if done {
		t.Fatalf("done = true mid-fade, want false")
	}

	clk.Advance(150 * time.Millisecond)
	if !done {
		t.Fatalf("done = false after the fade, want true")
	}
	assertHidden(t, out)
	assertVisible(t, in)
	if out.alpha != 1 || in.alpha != 1 {
		t.Fatalf("alphas = %v/%v, want 1/1", out.alpha, in.alpha)
	}
	if clk.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", clk.Pending())
	}
}

func TestCrossFade_EndJumpsToFinalState(t *testing.T) {
	clk := newClock()
	out, in := newView("out", true), newView("in", false)
	f := New(NewCrossFade(clk))

	calls := 0
	f.Replace(out, in, func() { calls++ })
	clk.Advance(32 * time.Millisecond)
	f.EndAnimation()
	f.EndAnimation()

	if calls != 1 {
		t.Fatalf("done calls = %d, want 1", calls)
	}
	assertHidden(t, out)
	assertVisible(t, in)
	if f.Animator().Running() {
		t.Fatalf("Running = true after End, want false")
	}
	if clk.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", clk.Pending())
	}
}

func TestCrossFade_ZeroDurationFinishesSynchronously(t *testing.T) {
	clk := newClock()
	fade := NewCrossFade(clk)
	fade.SetDuration(0)
	out, in := newView("out", true), newView("in", false)

	done := false
	New(fade).Replace(out, in, func() { done = true })

	if !done {
		t.Fatalf("done = false, want true")
	}
	assertHidden(t, out)
	assertVisible(t, in)
}

func TestTarget_String(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{TargetNone, "none"},
		{TargetContent, "content"},
		{TargetEmpty, "empty"},
		{TargetLoading, "loading"},
		{Target(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.target.String(); got != tt.want {
			t.Fatalf("Target(%d).String() = %q, want %q", int(tt.target), got, tt.want)
		}
	}
}
