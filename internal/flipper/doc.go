// Package flipper switches visibility between mutually exclusive UI regions.
//
// # Overview
//
// A screen that shows a list usually has three regions: the list itself
// (content), a placeholder for when there is nothing to show (empty) and a
// loading indicator. At most one of them is visible at a time. This package
// owns the rules for moving between them:
//
//   - Content appears immediately.
//   - An empty placeholder for data that has not arrived yet waits for a
//     delay, so a list that loads in a few milliseconds never flashes it.
//   - An empty placeholder after items were removed appears immediately and
//     without animation.
//   - The loading indicator can be shown or hidden immediately or through
//     the delay, animated or not.
//
// # Layers
//
//	┌──────────────────────────────┐
//	│ Progress                     │ loading indicator over Empty
//	│  └─ Empty                    │ content <-> empty state machine
//	│      └─ Scheduler            │ Delayed (or Immediate)
//	│          └─ Flipper          │ plain swap primitive
//	│              └─ Animator     │ CrossFade
//	└──────────────────────────────┘
//
// Flipper hides one View and shows another, immediately or through its
// Animator, and calls a completion callback when the transition settles.
//
// Delayed wraps a Flipper with a single pending slot. ScheduleDelayed arms a
// timer on a clock.Clock; any later ScheduleDelayed or SwapNow cancels the
// pending flip first, so the last request always wins and a superseded
// completion never runs. A flip whose outgoing view is already hidden is
// never animated. Delayed observes a lifecycle.Lifecycle: once it is
// destroyed the pending flip is dropped and every later request is inert.
//
// Empty and Progress are policy objects that flip through a Scheduler.
// They do not know whether flips are delayed; the Scheduler decides.
//
// # Shared Scheduler
//
// Progress drives both axes, content/empty and loading, through the same
// Scheduler. A pending empty flip is therefore cancelled by showing the
// loading indicator, and the other way round. Progress remembers the region
// that should be revealed and reveals it when loading hides, so no report
// is lost to that cancellation.
//
// # Threading
//
// Nothing here is safe for concurrent use. All calls, and all timer
// callbacks, must run on the goroutine that owns the views. clock.Manual
// and clock.Loop both honour that.
//
// # Usage Example
//
//	owner := lifecycle.New()
//	sched := flipper.NewDelayed(owner, clk, flipper.WithDelay(250*time.Millisecond))
//	regions := flipper.NewProgress(list, placeholder, spinner, sched)
//
//	regions.ShowDelayedLoading(true)
//	// ... fetch completes
//	regions.SetItemCount(len(items))
//	regions.ShowDelayedLoading(false)
//
//	owner.Destroy() // screen closed; pending flips never run
package flipper
