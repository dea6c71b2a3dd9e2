package ui

import "github.com/five82/flip/internal/flipper"

// region is a terminal area the flipper shows and hides. It only records
// state; View decides what each region draws.
type region struct {
	name    string
	visible bool
	alpha   float64
}

var _ flipper.Fader = (*region)(nil)

func newRegion(name string, visible bool) *region {
	return &region{name: name, visible: visible, alpha: 1}
}

func (r *region) Visible() bool { return r.visible }

func (r *region) SetVisible(visible bool) { r.visible = visible }

func (r *region) SetAlpha(alpha float64) {
	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	r.alpha = alpha
}

// dominant returns the visible region with the highest alpha. During a
// cross-fade both regions are visible and the brighter one is drawn.
// Earlier regions win ties.
func dominant(regions ...*region) *region {
	var best *region
	for _, r := range regions {
		if r == nil || !r.visible {
			continue
		}
		if best == nil || r.alpha > best.alpha {
			best = r
		}
	}
	return best
}
