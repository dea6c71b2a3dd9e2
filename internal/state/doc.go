// Package state provides thread-safe state shared by the poller and the UI.
//
// # Overview
//
// The poller goroutine writes fetch results into a Store; the Bubble Tea
// loop reads Snapshots on its own refresh tick and turns them into flip
// reports (loading, item count). Neither side ever blocks the other for
// longer than a slice copy.
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ BeginFetch()   │            │                 │
//	│ FetchItems()   │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │ flip regions    │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	store.BeginFetch()
//	→ snapshot.Loading = true
//
//	store.Update(items, nil)
//	→ snapshot.Items = items, HasItems = true
//	→ snapshot.Loading = false, LastError = nil, ConsecutiveFailures = 0
//
//	store.Update(nil, err)
//	→ snapshot.Items = <unchanged>
//	→ snapshot.Loading = false, LastError = err, ConsecutiveFailures++
//
// Failed fetches keep the previous items so the UI keeps showing the last
// good list instead of flipping to the empty placeholder.
//
// # Defensive Copying
//
// Update and Snapshot both clone the item slice, and Snapshot wraps the
// stored error so callers never share mutable state with the poller.
//
// # Testing Considerations
//
// The zero Store is ready to use:
//
//	store := &state.Store{}
package state
