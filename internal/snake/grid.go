package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell holds the three independent flags of one grid position.
type Cell struct {
	Occupied bool // covered by a body segment this turn
	Reward   bool
	Hazard   bool
}

// Empty reports whether nothing is on the cell.
func (c Cell) Empty() bool {
	return !c.Occupied && !c.Reward && !c.Hazard
}

// Grid is the fixed playing field. Occupancy is derived from the body and
// rebuilt every turn; rewards and hazards persist until consumed.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewGrid creates an empty width×height grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snake: invalid grid size %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return g.Bounds().ContainsPoint(p)
}

func (g *Grid) index(p core.Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return p.Y*g.width + p.X, true
}

// Cell returns the cell at p.
func (g *Grid) Cell(p core.Point) (Cell, error) {
	i, ok := g.index(p)
	if !ok {
		return Cell{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, p.X, p.Y)
	}
	return g.cells[i], nil
}

// IsOccupied reports whether a body segment covers p.
func (g *Grid) IsOccupied(p core.Point) (bool, error) {
	c, err := g.Cell(p)
	return c.Occupied, err
}

// IsReward reports whether p holds a reward.
func (g *Grid) IsReward(p core.Point) (bool, error) {
	c, err := g.Cell(p)
	return c.Reward, err
}

// IsHazard reports whether p holds a hazard.
func (g *Grid) IsHazard(p core.Point) (bool, error) {
	c, err := g.Cell(p)
	return c.Hazard, err
}

// ClearOccupancy marks every cell as not covered by the body.
// Rewards and hazards are left alone.
func (g *Grid) ClearOccupancy() {
	for i := range g.cells {
		g.cells[i].Occupied = false
	}
}

// MarkOccupied flags p as covered by the body. Points off the grid are ignored.
func (g *Grid) MarkOccupied(p core.Point) {
	if i, ok := g.index(p); ok {
		g.cells[i].Occupied = true
	}
}

// PlaceReward puts a reward on p. The caller guarantees p is free.
func (g *Grid) PlaceReward(p core.Point) {
	if i, ok := g.index(p); ok {
		g.cells[i].Reward = true
	}
}

// PlaceHazard puts a hazard on p. The caller guarantees p is free.
func (g *Grid) PlaceHazard(p core.Point) {
	if i, ok := g.index(p); ok {
		g.cells[i].Hazard = true
	}
}

// ClearReward removes the reward on p.
func (g *Grid) ClearReward(p core.Point) {
	if i, ok := g.index(p); ok {
		g.cells[i].Reward = false
	}
}

// Rebuild recomputes occupancy from the body's segment positions.
func (g *Grid) Rebuild(b *Body) {
	g.ClearOccupancy()
	for _, seg := range b.segments {
		g.MarkOccupied(seg.Pos)
	}
}

// Free reports whether p is inside the grid and carries nothing.
func (g *Grid) Free(p core.Point) bool {
	i, ok := g.index(p)
	return ok && g.cells[i].Empty()
}

// FreeCells returns every empty cell in row-major order.
func (g *Grid) FreeCells() []core.Point {
	return g.collect(Cell.Empty)
}

// OccupiedCells returns every body-covered cell in row-major order.
func (g *Grid) OccupiedCells() []core.Point {
	return g.collect(func(c Cell) bool { return c.Occupied })
}

// Rewards returns every reward position in row-major order.
func (g *Grid) Rewards() []core.Point {
	return g.collect(func(c Cell) bool { return c.Reward })
}

// Hazards returns every hazard position in row-major order.
func (g *Grid) Hazards() []core.Point {
	return g.collect(func(c Cell) bool { return c.Hazard })
}

func (g *Grid) collect(match func(Cell) bool) []core.Point {
	var out []core.Point
	for i, c := range g.cells {
		if match(c) {
			out = append(out, g.point(i))
		}
	}
	return out
}

func (g *Grid) point(i int) core.Point {
	return core.Pt(i%g.width, i/g.width)
}
