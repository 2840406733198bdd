// Package engine drives a stock list through simulated days.
//
// The aging rules live in package inventory; this package only owns the
// day-to-day loop around them:
//
//   - Engine holds the caller's items and a Clock counting elapsed days.
//   - Step applies exactly one inventory.Update and advances the clock.
//   - Run calls Step once per day and hands each Snapshot to an observer.
//
// There is no batch shortcut: N days always means N single steps, so every
// intermediate clamp is observed exactly as it would be by hand.
//
// Each Engine is tagged with a run ID from a RunIDGenerator so log lines and
// reports from the same simulation can be correlated. Production uses
// UUIDv7Generator; tests use FixedGenerator for reproducible output.
//
// An Engine is owned by a single goroutine. Step and Run must not be called
// concurrently on the same Engine.
package engine
