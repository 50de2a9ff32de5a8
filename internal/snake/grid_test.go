package snake

import (
	"errors"
	"sort"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func sortedPoints(ps []core.Point) []core.Point {
	out := append([]core.Point(nil), ps...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestNewGrid(t *testing.T) {
	g := mustGrid(t, 25, 15)

	if g.Width() != 25 || g.Height() != 15 {
		t.Errorf("size = %dx%d, expected 25x15", g.Width(), g.Height())
	}
	if n := len(g.FreeCells()); n != 375 {
		t.Errorf("new grid has %d free cells, expected 375", n)
	}

	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(size[0], size[1]); err == nil {
			t.Errorf("NewGrid(%d, %d) should fail", size[0], size[1])
		}
	}
}

func TestGridQueriesOutOfBounds(t *testing.T) {
	g := mustGrid(t, 25, 15)

	for _, p := range []core.Point{{X: -1, Y: 7}, {X: 25, Y: 0}, {X: 0, Y: 15}, {X: 3, Y: -1}} {
		if _, err := g.IsOccupied(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("IsOccupied(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
		if _, err := g.IsReward(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("IsReward(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
		if _, err := g.IsHazard(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("IsHazard(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
	}

	// Mutations off the grid are ignored.
	g.MarkOccupied(core.Pt(-1, 7))
	g.PlaceReward(core.Pt(30, 30))
	if n := len(g.FreeCells()); n != 375 {
		t.Errorf("off-grid mutation changed the grid, %d free cells", n)
	}
}

func TestGridPlaceAndClear(t *testing.T) {
	g := mustGrid(t, 5, 5)
	r, h := core.Pt(1, 2), core.Pt(3, 4)

	g.PlaceReward(r)
	g.PlaceHazard(h)

	if ok, err := g.IsReward(r); err != nil || !ok {
		t.Errorf("IsReward(%v) = (%v, %v), expected true", r, ok, err)
	}
	if ok, _ := g.IsHazard(r); ok {
		t.Errorf("IsHazard(%v) should be false", r)
	}
	if ok, err := g.IsHazard(h); err != nil || !ok {
		t.Errorf("IsHazard(%v) = (%v, %v), expected true", h, ok, err)
	}

	if g.Free(r) || g.Free(h) {
		t.Error("cells with items should not be free")
	}
	if g.Free(core.Pt(5, 0)) {
		t.Error("out-of-bounds points are never free")
	}

	g.ClearReward(r)
	if ok, _ := g.IsReward(r); ok {
		t.Error("reward should be gone after ClearReward")
	}
	if !g.Free(r) {
		t.Error("cleared reward cell should be free")
	}
	if len(g.Hazards()) != 1 {
		t.Error("ClearReward should not touch hazards")
	}
}

func TestClearOccupancyKeepsItems(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.PlaceReward(core.Pt(0, 0))
	g.PlaceHazard(core.Pt(4, 4))
	g.MarkOccupied(core.Pt(2, 2))

	g.ClearOccupancy()

	if len(g.OccupiedCells()) != 0 {
		t.Errorf("occupied cells remain after ClearOccupancy: %v", g.OccupiedCells())
	}
	if len(g.Rewards()) != 1 || len(g.Hazards()) != 1 {
		t.Error("ClearOccupancy should keep rewards and hazards")
	}
}

func TestRebuildMatchesBody(t *testing.T) {
	g := mustGrid(t, 25, 15)
	b := NewBody(core.Pt(12, 7), DirRight, 0)
	for i := 0; i < 4; i++ {
		if err := b.Grow(); err != nil {
			t.Fatalf("Grow() failed: %v", err)
		}
	}

	commands := []Direction{DirRight, DirDown, DirDown, DirLeft, DirLeft, DirUp}
	for _, d := range commands {
		if err := b.ApplyHeadCommand(d); err != nil {
			t.Fatalf("ApplyHeadCommand(%v) failed: %v", d, err)
		}
		b.Advance()
		g.Rebuild(b)

		got := sortedPoints(g.OccupiedCells())
		want := sortedPoints(b.Positions())
		if len(got) != len(want) {
			t.Fatalf("after %v: %d occupied cells, expected %d", d, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("after %v: occupied %v, expected %v", d, got, want)
			}
		}
	}
}
