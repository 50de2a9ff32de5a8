package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Axis is the coordinate a segment changes when it moves.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Sign is the way a segment moves along its axis. Positive is right on the
// horizontal axis and down on the vertical one.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// Direction is a movement command.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists the four commands in a stable order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// DirectionOf combines an axis and a sign into a Direction.
func DirectionOf(a Axis, s Sign) Direction {
	switch {
	case a == Horizontal && s == Positive:
		return DirRight
	case a == Horizontal:
		return DirLeft
	case s == Positive:
		return DirDown
	default:
		return DirUp
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Axis returns the coordinate that changes when moving in d.
func (d Direction) Axis() Axis {
	if d == DirUp || d == DirDown {
		return Vertical
	}
	return Horizontal
}

// Sign returns the way d moves along its axis.
func (d Direction) Sign() Sign {
	if d == DirRight || d == DirDown {
		return Positive
	}
	return Negative
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for d.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	default:
		return core.Pt(1, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "down", "left" or "right" (any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
