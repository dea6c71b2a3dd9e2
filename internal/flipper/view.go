package flipper

// View is a rectangular region whose only state the flipper cares about is
// whether it is shown. Views are borrowed; the flipper never owns them.
type View interface {
	Visible() bool
	SetVisible(visible bool)
}

// Fader is a View that can render partial opacity during a cross-fade.
type Fader interface {
	View
	SetAlpha(alpha float64)
}

func setAlpha(v View, alpha float64) {
	if f, ok := v.(Fader); ok {
		f.SetAlpha(alpha)
	}
}

// Target identifies the region a transition moves toward.
type Target int

const (
	TargetNone Target = iota
	TargetContent
	TargetEmpty
	TargetLoading
)

// String returns a human-readable name for the target.
func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetContent:
		return "content"
	case TargetEmpty:
		return "empty"
	case TargetLoading:
		return "loading"
	default:
		return "unknown"
	}
}
