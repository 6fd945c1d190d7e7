package sim

import "errors"

var (
	// ErrNoActivePlayer is returned when a system needs the player and none
	// is registered. Systems skip their frame on it.
	ErrNoActivePlayer = errors.New("sim: no active player")

	// ErrPlayerExists is returned by SpawnPlayer when a live player is
	// already registered.
	ErrPlayerExists = errors.New("sim: player already exists")

	// ErrInvalidTransition is returned by PhaseMachine.Request for a
	// transition the phase graph does not allow.
	ErrInvalidTransition = errors.New("sim: invalid phase transition")
)
