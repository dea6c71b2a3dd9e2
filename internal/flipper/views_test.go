package flipper

import (
	"testing"
	"time"

	"github.com/five82/flip/internal/clock"
)

// fakeView records every visibility and alpha change.
type fakeView struct {
	name    string
	visible bool
	alpha   float64
	shows   int
	hides   int
	faded   bool
	ever    bool
}

func newView(name string, visible bool) *fakeView {
	return &fakeView{name: name, visible: visible, alpha: 1, ever: visible}
}

func (v *fakeView) Visible() bool { return v.visible }

func (v *fakeView) SetVisible(visible bool) {
	if visible == v.visible {
		return
	}
	v.visible = visible
	if visible {
		v.shows++
		v.ever = true
	} else {
		v.hides++
	}
}

func (v *fakeView) SetAlpha(alpha float64) {
	v.alpha = alpha
	if alpha < 1 {
		v.faded = true
	}
}

func newClock() *clock.Manual {
	return clock.NewManual(time.Unix(0, 0))
}

func assertVisible(t *testing.T, views ...*fakeView) {
	t.Helper()
	for _, v := range views {
		if !v.visible {
			t.Fatalf("%s visible = false, want true", v.name)
		}
	}
}

func assertHidden(t *testing.T, views ...*fakeView) {
	t.Helper()
	for _, v := range views {
		if v.visible {
			t.Fatalf("%s visible = true, want false", v.name)
		}
	}
}

func visibleCount(views ...*fakeView) int {
	n := 0
	for _, v := range views {
		if v.visible {
			n++
		}
	}
	return n
}
