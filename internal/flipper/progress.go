package flipper

// Progress layers a loading indicator over an Empty. Both axes share one
// Scheduler, so a pending flip on one axis is superseded by a flip on the
// other.
//
// While loading is shown, content/empty reports are only recorded; hiding
// the indicator reveals the most recently recorded region.
type Progress struct {
	*Empty

	loading     View
	sched       Scheduler
	current     View
	isLoading   bool
	showPending bool
	reveal      *reveal
	shown       bool
	onLoading   []func(bool)
}

// reveal is a content/empty flip whose completion may be deferred until
// the loading indicator hides.
type reveal struct {
	view  View
	done  func()
	fired bool
}

// NewProgress returns a Progress over the three regions. The loading region
// starts hidden and the current region is whichever of content and empty is
// visible.
func NewProgress(content, empty, loading View, sched Scheduler) *Progress {
	p := &Progress{loading: loading, sched: sched}
	p.Empty = NewEmpty(content, empty, progressGate{p})

	if loading != nil {
		loading.SetVisible(false)
	}
	p.current = empty
	if content != nil && content.Visible() {
		p.current = content
	}
	return p
}

// Loading reports the loading flag. It changes when requested, not when the
// flip settles.
func (p *Progress) Loading() bool {
	return p.isLoading
}

// OnLoading registers fn to run when the loading region settles shown or
// hidden.
func (p *Progress) OnLoading(fn func(visible bool)) {
	if fn != nil {
		p.onLoading = append(p.onLoading, fn)
	}
}

// ShowLoading toggles loading with an immediate animated flip.
func (p *Progress) ShowLoading(loading bool) {
	p.SetLoading(loading, true, false)
}

// ShowLoadingNoAnimation toggles loading with an immediate unanimated flip.
func (p *Progress) ShowLoadingNoAnimation(loading bool) {
	p.SetLoading(loading, false, false)
}

// ShowDelayedLoading toggles loading through the delay, animated.
func (p *Progress) ShowDelayedLoading(loading bool) {
	p.SetLoading(loading, true, true)
}

// ShowDelayedLoadingNoAnimation toggles loading through the delay without
// animation.
func (p *Progress) ShowDelayedLoadingNoAnimation(loading bool) {
	p.SetLoading(loading, false, true)
}

// SetLoading is the single policy behind the Show* entry points. Repeating
// the current state does nothing.
func (p *Progress) SetLoading(loading, animate, canDelay bool) {
	if p.loading == nil || p.current == nil || loading == p.isLoading {
		return
	}
	p.isLoading = loading

	if loading {
		p.showPending = canDelay
		p.flip(p.visibleRegion(), p.loading, animate, canDelay, func() {
			p.showPending = false
			p.hideOthers(p.loading)
			p.notifyLoading(true)
		})
		return
	}

	if p.showPending {
		// The indicator never appeared; put the current region back at once.
		p.showPending = false
		animate, canDelay = false, false
	}
	r := p.reveal
	p.flip(p.loading, p.current, animate, canDelay, func() {
		p.finish(r)
		p.notifyLoading(false)
	})
}

func (p *Progress) flip(out, in View, animate, canDelay bool, done func()) {
	switch {
	case canDelay:
		p.sched.ScheduleDelayed(out, in, animate, done)
	case animate:
		p.sched.SwapNow(out, in, true, done)
	default:
		p.sched.SwapNow(out, in, false, done)
	}
}

// route handles a content/empty flip requested by the embedded Empty.
func (p *Progress) route(out, in View, animate, delayed bool, done func()) {
	if out == nil || in == nil {
		return
	}
	p.current = in
	r := &reveal{view: in, done: done}
	p.reveal = r
	if p.isLoading {
		return
	}

	hiding := p.loading != nil && p.loading.Visible()
	if hiding {
		out = p.loading
	}
	finish := func() {
		p.finish(r)
		if hiding {
			p.notifyLoading(false)
		}
	}
	if delayed {
		p.sched.ScheduleDelayed(out, in, animate, finish)
		return
	}
	p.sched.SwapNow(out, in, animate, finish)
}

// finish settles a revealed region: every other region is hidden and the
// recorded completion runs once.
func (p *Progress) finish(r *reveal) {
	if r == nil {
		p.hideOthers(p.current)
		return
	}
	p.hideOthers(r.view)
	if r.fired {
		return
	}
	r.fired = true
	if r.done != nil {
		r.done()
	}
}

func (p *Progress) visibleRegion() View {
	switch {
	case p.Empty.content != nil && p.Empty.content.Visible():
		return p.Empty.content
	case p.Empty.empty != nil && p.Empty.empty.Visible():
		return p.Empty.empty
	default:
		return p.current
	}
}

func (p *Progress) hideOthers(keep View) {
	for _, v := range []View{p.Empty.content, p.Empty.empty, p.loading} {
		if v != nil && v != keep {
			v.SetVisible(false)
		}
	}
}

func (p *Progress) notifyLoading(visible bool) {
	if p.shown == visible {
		return
	}
	p.shown = visible
	for _, fn := range p.onLoading {
		fn(visible)
	}
}

// progressGate is the Scheduler the embedded Empty flips through.
type progressGate struct {
	p *Progress
}

func (g progressGate) ScheduleDelayed(out, in View, animate bool, done func()) {
	g.p.route(out, in, animate, true, done)
}

func (g progressGate) CancelPending() {
	g.p.sched.CancelPending()
}

func (g progressGate) SwapNow(out, in View, animate bool, done func()) {
	g.p.route(out, in, animate, false, done)
}
