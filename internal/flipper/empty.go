package flipper

// Empty flips between a content region and an empty placeholder. Content
// always appears at once; an empty placeholder for data that never arrived
// waits for the scheduler's delay, so a fast load never flashes it.
type Empty struct {
	content View
	empty   View
	sched   Scheduler

	current   Target
	count     int
	counted   bool
	listeners []func(Target)
}

// NewEmpty returns an Empty over the given regions. Nothing is flipped until
// the first report arrives.
func NewEmpty(content, empty View, sched Scheduler) *Empty {
	return &Empty{content: content, empty: empty, sched: sched}
}

// Current returns the region shown by the last completed flip, or
// TargetNone before the first one.
func (e *Empty) Current() Target {
	return e.current
}

// ItemCount returns the last count passed to SetItemCount.
func (e *Empty) ItemCount() int {
	return e.count
}

// OnFlip registers fn to run after each completed flip that changed the
// current region.
func (e *Empty) OnFlip(fn func(Target)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

// ShowContent flips to the content region. It is never delayed and it
// supersedes a pending empty flip.
func (e *Empty) ShowContent(animate bool) {
	if e.content == nil || e.empty == nil {
		return
	}
	e.sched.SwapNow(e.empty, e.content, animate, func() { e.completed(TargetContent) })
}

// ShowEmpty flips to the empty placeholder. When items were just removed the
// flip is immediate and unanimated; otherwise it waits for the delay so a
// later ShowContent can cancel it.
func (e *Empty) ShowEmpty(hadItems bool) {
	if e.content == nil || e.empty == nil {
		return
	}
	done := func() { e.completed(TargetEmpty) }
	if hadItems {
		e.sched.SwapNow(e.content, e.empty, false, done)
		return
	}
	e.sched.ScheduleDelayed(e.content, e.empty, true, done)
}

// SetItemCount reports the host's item count. The first report settles the
// initial region without animation; later reports flip only when the count
// crosses zero.
func (e *Empty) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	prev, first := e.count, !e.counted
	e.count, e.counted = n, true

	switch {
	case first && n > 0:
		e.ShowContent(false)
	case first:
		e.ShowEmpty(false)
	case prev == 0 && n > 0:
		e.ShowContent(true)
	case prev > 0 && n == 0:
		e.ShowEmpty(true)
	}
}

func (e *Empty) completed(t Target) {
	if e.current == t {
		return
	}
	e.current = t
	for _, fn := range e.listeners {
		fn(t)
	}
}
