package flipper

// Flipper is the plain swap primitive: it hides one view and shows another,
// immediately or through its Animator, and reports completion.
type Flipper struct {
	animator Animator
}

// New returns a Flipper. A nil animator makes every flip immediate.
func New(animator Animator) *Flipper {
	return &Flipper{animator: animator}
}

// Animator returns the animator used for animated flips.
func (f *Flipper) Animator() Animator {
	return f.animator
}

// SetAnimator replaces the animator, ending any running animation.
func (f *Flipper) SetAnimator(a Animator) {
	f.EndAnimation()
	f.animator = a
}

// Replace flips out to in with animation.
func (f *Flipper) Replace(out, in View, done func()) {
	f.replace(out, in, true, done)
}

// ReplaceNoAnimation flips out to in immediately.
func (f *Flipper) ReplaceNoAnimation(out, in View, done func()) {
	f.replace(out, in, false, done)
}

// EndAnimation settles a running animation, if any.
func (f *Flipper) EndAnimation() {
	if f.animator != nil {
		f.animator.End()
	}
}

// replace leaves exactly one of out and in visible. done runs once the
// transition settles, and also when the views were already in place.
// Missing views are nothing to flip, so done does not run.
func (f *Flipper) replace(out, in View, animate bool, done func()) {
	if out == nil || in == nil {
		return
	}
	f.EndAnimation()

	if !out.Visible() && in.Visible() {
		if done != nil {
			done()
		}
		return
	}
	if animate && f.animator != nil {
		f.animator.AnimateFlip(out, in, done)
		return
	}
	out.SetVisible(false)
	in.SetVisible(true)
	if done != nil {
		done()
	}
}
