package replay

import (
	"time"

	"github.com/five82/flip/internal/flipper"
)

// EventKind classifies a timeline entry.
type EventKind string

const (
	KindStep    EventKind = "step"
	KindShow    EventKind = "show"
	KindHide    EventKind = "hide"
	KindSettled EventKind = "settled"
	KindLoading EventKind = "loading"
)

// Event is one entry of a replay timeline.
type Event struct {
	At     time.Duration
	Kind   EventKind
	Region string // set for show and hide
	Detail string
}

// Timeline is the outcome of a replay.
type Timeline struct {
	Events   []Event
	Visible  []string // regions visible when the replay ended
	Current  flipper.Target
	Loading  bool
	Duration time.Duration
}

// Shown counts how often region became visible, including at start.
func (t Timeline) Shown(region string) int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == KindShow && e.Region == region {
			n++
		}
	}
	return n
}

// VisibleAt returns the regions visible at d, after every change made at d.
func (t Timeline) VisibleAt(d time.Duration) []string {
	state := make(map[string]bool)
	var order []string
	for _, e := range t.Events {
		if e.At > d {
			break
		}
		switch e.Kind {
		case KindShow:
			if _, seen := state[e.Region]; !seen {
				order = append(order, e.Region)
			}
			state[e.Region] = true
		case KindHide:
			if _, seen := state[e.Region]; !seen {
				order = append(order, e.Region)
			}
			state[e.Region] = false
		}
	}
	var out []string
	for _, name := range order {
		if state[name] {
			out = append(out, name)
		}
	}
	return out
}
