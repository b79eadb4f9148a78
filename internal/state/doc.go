// Package state provides thread-safe storage for the latest viewport
// classification.
//
// # Overview
//
// The width watcher and the UI both produce measurements: a width, the
// device type that owns it and the breaker-relative mobile flag. Store keeps
// the most recent one so other goroutines can read it without touching the
// detector.
//
//	Producer (watcher / UI):        Consumer (UI / logs):
//	┌──────────────────┐           ┌──────────────────┐
//	│ measure width    │           │                  │
//	│ state.Measure()  │           │                  │
//	│ store.Update()   │──────────→│ store.Snapshot() │
//	└──────────────────┘  (mutex)  └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace measurement, report class change
//	changed := store.Update(m)
//
//	// Error: keep previous measurement, record error
//	store.Fail(err)
//
// Update returns true when the device class, mobile flag or breaker differs
// from the previous measurement; width changes inside one class are not
// transitions. The first measurement is reported as a change but is not
// counted in Transitions.
//
// # Concurrency Model
//
// Update and Fail take the write lock, Snapshot the read lock. Snapshot
// returns a value copy with the error re-wrapped so callers never share the
// stored error instance.
package state
