package snake

import "errors"

var (
	// ErrAllocation is returned when the body cannot take another segment.
	ErrAllocation = errors.New("snake: cannot allocate segment")

	// ErrGridFull is returned by the spawner when no free cell exists.
	ErrGridFull = errors.New("snake: no free cell on grid")

	// ErrOutOfBounds is returned by grid queries for positions outside the grid.
	ErrOutOfBounds = errors.New("snake: position outside grid")

	// ErrReversal is returned when a command reverses the head's direction.
	ErrReversal = errors.New("snake: cannot reverse direction")

	// ErrInvalidDirection is returned for commands outside the four cardinal directions.
	ErrInvalidDirection = errors.New("snake: invalid direction")

	// ErrSessionOver is returned when a turn is requested after the session ended.
	ErrSessionOver = errors.New("snake: session is over")
)
