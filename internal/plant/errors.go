package plant

import "errors"

// Domain errors for element construction and stepping.
var (
	// ErrInvalidParameter indicates a construction parameter outside its
	// valid range. Surfaced before any element state is created.
	ErrInvalidParameter = errors.New("plant: parameter out of valid bounds")

	// ErrInvalidTimeStep indicates a zero or negative dt passed to Step.
	// The element state is left unchanged when this is returned.
	ErrInvalidTimeStep = errors.New("plant: time step must be positive")
)
