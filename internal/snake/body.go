package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Segment is one unit of the body.
type Segment struct {
	Pos  core.Point
	Axis Axis
	Sign Sign
}

// Direction returns the direction the segment will move next.
func (s Segment) Direction() Direction {
	return DirectionOf(s.Axis, s.Sign)
}

// Delta returns the one-cell offset the segment will move by.
func (s Segment) Delta() core.Point {
	return s.Direction().Delta()
}

// Body is the snake: an owned, ordered run of segments with the head at
// index 0 and the tail last. Only the head takes commands; every other
// segment inherits its direction from the one ahead of it a turn later.
type Body struct {
	segments []Segment
	capacity int // maximum length, 0 for unbounded
}

// NewBody creates a one-segment body at head moving in dir.
// capacity bounds how far the body may grow; 0 means unbounded.
func NewBody(head core.Point, dir Direction, capacity int) *Body {
	size := capacity
	if size <= 0 || size > 64 {
		size = 64
	}
	segments := make([]Segment, 1, size)
	segments[0] = Segment{Pos: head, Axis: dir.Axis(), Sign: dir.Sign()}
	return &Body{segments: segments, capacity: capacity}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Capacity returns the maximum length, 0 when unbounded.
func (b *Body) Capacity() int {
	return b.capacity
}

// Head returns the head segment.
func (b *Body) Head() Segment {
	return b.segments[0]
}

// Tail returns the last segment. For a one-segment body it is the head.
func (b *Body) Tail() Segment {
	return b.segments[len(b.segments)-1]
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Segment {
	out := make([]Segment, len(b.segments))
	copy(out, b.segments)
	return out
}

// Positions returns the segment positions, head first.
func (b *Body) Positions() []core.Point {
	out := make([]core.Point, len(b.segments))
	for i, seg := range b.segments {
		out[i] = seg.Pos
	}
	return out
}

// ApplyHeadCommand points the head in d. Repeating the current direction is
// allowed; reversing it is not and leaves the body untouched.
func (b *Body) ApplyHeadCommand(d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}
	head := &b.segments[0]
	if d == head.Direction().Opposite() {
		return ErrReversal
	}
	head.Axis, head.Sign = d.Axis(), d.Sign()
	return nil
}

// Advance moves every segment one cell.
//
// The head moves along its own direction. Each following segment moves along
// the direction it carried into the turn and only then takes the direction
// its predecessor moved with, which was captured before the predecessor was
// overwritten. The result is that every segment lands where the one ahead of
// it stood.
func (b *Body) Advance() {
	if len(b.segments) == 0 {
		return
	}

	head := &b.segments[0]
	head.Pos = head.Pos.Add(head.Delta())
	leadAxis, leadSign := head.Axis, head.Sign

	for i := 1; i < len(b.segments); i++ {
		seg := &b.segments[i]
		axis, sign := seg.Axis, seg.Sign

		seg.Pos = seg.Pos.Add(seg.Delta())
		seg.Axis, seg.Sign = leadAxis, leadSign

		leadAxis, leadSign = axis, sign
	}
}

// Grow appends a segment behind the tail, one cell opposite the tail's
// direction, moving the same way. It fails with ErrAllocation once the body
// has reached its capacity.
func (b *Body) Grow() error {
	if len(b.segments) == 0 {
		return ErrAllocation
	}
	if b.capacity > 0 && len(b.segments) >= b.capacity {
		return ErrAllocation
	}

	tail := b.Tail()
	b.segments = append(b.segments, Segment{
		Pos:  tail.Pos.Sub(tail.Delta()),
		Axis: tail.Axis,
		Sign: tail.Sign,
	})
	return nil
}

// SelfIntersects reports whether the head shares its position with any other
// segment.
func (b *Body) SelfIntersects() bool {
	if len(b.segments) < 2 {
		return false
	}
	head := b.segments[0].Pos
	for _, seg := range b.segments[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

// Release drops every segment. The body must not be used afterwards.
func (b *Body) Release() {
	b.segments = nil
}

// Released reports whether Release has been called.
func (b *Body) Released() bool {
	return b.segments == nil
}
