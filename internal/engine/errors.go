package engine

import "errors"

// Sentinel errors for the engine's public operations. Collision and
// CapacityExceeded are expected operational outcomes (spec.md §7), not
// failures worth logging; ErrInvalidDoctor and ErrInvalidArgument guard
// programmer errors from a malformed request that should never reach the
// engine once the shell has validated it.
var (
	// ErrCapacityExceeded is returned when either the global MAX_TOTAL or a
	// single doctor's MAX_DAILY limit would be exceeded by an insertion.
	ErrCapacityExceeded = errors.New("engine: capacity exceeded")

	// ErrInvalidDoctor is returned when doctor is outside [0, D).
	ErrInvalidDoctor = errors.New("engine: invalid doctor id")

	// ErrInvalidArgument is returned for a non-positive duration or
	// negative start time.
	ErrInvalidArgument = errors.New("engine: invalid argument")
)

// CollisionError reports the bounds of the existing event that blocked an
// insertion. It is returned (not merely a sentinel) because the caller
// needs the colliding interval to render the COLLISION reply (spec.md §6).
type CollisionError struct {
	ExistingStart int
	ExistingEnd   int
}

func (e *CollisionError) Error() string {
	return "engine: collision with existing event"
}
