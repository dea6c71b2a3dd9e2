package replay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/flip/internal/clock"
	"github.com/five82/flip/internal/flipper"
	"github.com/five82/flip/internal/lifecycle"
	"github.com/five82/flip/internal/logging"
)

// Region names used in timelines.
const (
	RegionContent = "content"
	RegionEmpty   = "empty"
	RegionLoading = "loading"
)

var epoch = time.Unix(0, 0)

type recorder struct {
	clk    *clock.Manual
	events []Event
}

func (r *recorder) add(e Event) {
	e.At = r.clk.Now().Sub(epoch)
	r.events = append(r.events, e)
}

// recordingView is a region that logs every visibility change.
type recordingView struct {
	name    string
	visible bool
	rec     *recorder
}

func (v *recordingView) Visible() bool { return v.visible }

func (v *recordingView) SetVisible(visible bool) {
	if v.visible == visible {
		return
	}
	v.visible = visible
	kind := KindHide
	if visible {
		kind = KindShow
	}
	v.rec.add(Event{Kind: kind, Region: v.name})
}

// Run plays s against a virtual clock, starting with the content region
// visible, and returns every visibility change it caused.
func Run(s Scenario, logger *slog.Logger) (Timeline, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	clk := clock.NewManual(epoch)
	rec := &recorder{clk: clk}
	owner := lifecycle.New()

	fade := flipper.NewCrossFade(clk)
	fade.SetDuration(s.Fade)
	sched := flipper.NewDelayed(owner, clk,
		flipper.WithDelay(s.Delay),
		flipper.WithAnimator(fade),
		flipper.WithLogger(logger),
	)

	content := &recordingView{name: RegionContent, rec: rec}
	empty := &recordingView{name: RegionEmpty, rec: rec}
	loading := &recordingView{name: RegionLoading, rec: rec}
	content.SetVisible(true)

	p := flipper.NewProgress(content, empty, loading, sched)
	p.OnFlip(func(t flipper.Target) {
		rec.add(Event{Kind: KindSettled, Detail: t.String()})
	})
	p.OnLoading(func(visible bool) {
		rec.add(Event{Kind: KindLoading, Detail: fmt.Sprintf("visible=%t", visible)})
	})

	var elapsed time.Duration
	for _, step := range s.Steps {
		if step.At > elapsed {
			clk.Advance(step.At - elapsed)
			elapsed = step.At
		}
		rec.add(Event{Kind: KindStep, Detail: step.String()})
		logger.Debug("replay step", "at_ms", step.At.Milliseconds(), "action", string(step.Action))

		switch step.Action {
		case ActionContent:
			p.ShowContent(step.Animate)
		case ActionEmpty:
			p.ShowEmpty(step.HadItems)
		case ActionItems:
			p.SetItemCount(step.Count)
		case ActionLoading:
			p.SetLoading(step.Show, step.Animate, step.Delay)
		case ActionDestroy:
			owner.Destroy()
		default:
			return Timeline{}, fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
		}
	}
	clk.Advance(s.Settle)
	elapsed += s.Settle

	t := Timeline{
		Events:   rec.events,
		Current:  p.Current(),
		Loading:  p.Loading(),
		Duration: elapsed,
	}
	for _, v := range []*recordingView{content, empty, loading} {
		if v.visible {
			t.Visible = append(t.Visible, v.name)
		}
	}
	return t, nil
}
