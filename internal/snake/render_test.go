package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderGrid(t *testing.T) {
	g := mustGrid(t, 3, 2)
	b := NewBody(core.Pt(0, 0), DirLeft, 0)
	if err := b.Grow(); err != nil {
		t.Fatalf("Grow() failed: %v", err)
	}
	g.Rebuild(b)
	g.PlaceReward(core.Pt(2, 1))
	g.PlaceHazard(core.Pt(0, 1))

	w, h := ScreenSize(g.Width(), g.Height())
	dst := core.NewScreen(w, h)
	RenderGrid(g, b.Head().Pos, true, 3, DefaultGlyphs(), dst)

	expected := []string{
		"#####",
		"#OO #",
		"#X A#",
		"#####",
		"",
		"SCORE : 3",
	}
	for y, want := range expected {
		if got := strings.TrimRight(dst.Row(y), " "); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}

	if dst.GetCell(1, 1).Color != DefaultGlyphs().Head.Color {
		t.Error("head cell should use the head color")
	}
	if dst.GetCell(2, 1).Color != DefaultGlyphs().Body.Color {
		t.Error("body cell should use the body color")
	}
}

func TestSessionRender(t *testing.T) {
	s := newSession(t, DefaultConfig(), 8)
	w, h := ScreenSize(25, 15)
	if w != 27 || h != 19 {
		t.Fatalf("ScreenSize(25, 15) = %dx%d, expected 27x19", w, h)
	}

	dst := core.NewScreen(w, h)
	s.Render(DefaultGlyphs(), dst)
	out := dst.String()

	if strings.Count(out, "A") != 1 {
		t.Errorf("expected exactly one reward glyph in:\n%s", out)
	}
	if strings.Count(out, "X") != 1 {
		t.Errorf("expected exactly one hazard glyph in:\n%s", out)
	}
	if dst.Get(13, 8) != 'O' {
		t.Errorf("head should be drawn at screen (13, 8), got %q", dst.Get(13, 8))
	}
	if !strings.Contains(out, "SCORE : 0") {
		t.Error("score line missing")
	}
}
