// Package clock provides a tiny time abstraction.
//
// Business logic should depend on the Clocker interface instead of calling
// time.Now() directly, so tests can swap in a deterministic clock.
package clock
