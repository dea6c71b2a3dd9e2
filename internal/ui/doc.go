// Package ui provides the terminal user interface for flip.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program that lists the items of an HTTP feed. The
// screen body is one of three regions, and which one is shown is decided by
// a flipper.Progress rather than by the model itself:
//
//   - content: a viewport listing the feed items
//   - empty: a placeholder shown when the feed has no items or is failing
//   - loading: a spinner shown while a fetch is in flight
//
// # Package Structure
//
//   - app.go: Model, Options, Update loop, key handling and Run
//   - render.go: header, body, command bar and help rendering
//   - region.go: the flipper.Fader implementation backing each region
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color themes and Lipgloss styles
//
// # Event Flow
//
//  1. A tick reads a state.Snapshot from the store every 200ms
//  2. The loading flag goes to Progress.ShowDelayedLoading on every tick
//  3. When a fetch completed, the item count goes to Progress.SetItemCount
//  4. Flip delays and fade frames fire on a clock.Loop; each wake-up comes
//     back as a message so it runs inside Update
//  5. Quitting destroys the screen's lifecycle.Owner, which cancels any
//     pending flip before the program exits
//
// Because timers only run inside Update, the flipper state is never touched
// from another goroutine.
//
// # Rendering
//
// Terminals have no opacity. During a cross-fade both regions are visible
// and the one with the higher alpha is drawn; below half opacity it is drawn
// faint.
//
// # Keys
//
//	r      refresh now
//	a      toggle animations (saved to prefs)
//	+ / -  change the flip delay in 50ms steps, 0 to 2s
//	T      cycle theme (saved to prefs)
//	j / k  scroll the item list
//	?      help
//	q      quit
package ui
