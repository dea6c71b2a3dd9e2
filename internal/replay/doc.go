// Package replay runs scripted flip scenarios on a virtual clock.
//
// A scenario is a TOML file of timed reports. Replaying it drives a
// flipper.Progress over recording regions and returns a Timeline of every
// visibility change, which makes flip timing visible without a terminal.
//
//	delay_ms = 250   # optional, flip delay
//	fade_ms = 250    # optional, cross-fade duration
//	settle_ms = 1000 # optional, time run after the last step
//
//	[[step]]
//	at_ms = 0
//	action = "loading"   # content, empty, items, loading, destroy
//	delay = true
//
//	[[step]]
//	at_ms = 120
//	action = "items"
//	count = 0
//
// Step fields by action:
//
//	content  animate (default true)
//	empty    had_items
//	items    count
//	loading  show (default true), animate (default true), delay
//	destroy  (none)
package replay
