package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyph is how one kind of cell is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Glyphs is the renderer legend.
type Glyphs struct {
	Head   Glyph
	Body   Glyph
	Reward Glyph
	Hazard Glyph
	Empty  Glyph
	Border Glyph
}

// DefaultGlyphs returns the classic legend: '#' frame, 'O' body, 'A' reward,
// 'X' hazard.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Head:   Glyph{Rune: 'O', Color: core.ColorBrightGreen},
		Body:   Glyph{Rune: 'O', Color: core.ColorGreen},
		Reward: Glyph{Rune: 'A', Color: core.ColorBrightRed},
		Hazard: Glyph{Rune: 'X', Color: core.ColorYellow},
		Empty:  Glyph{Rune: ' '},
		Border: Glyph{Rune: '#', Color: core.ColorGray},
	}
}

// ScreenSize returns the screen dimensions Render needs for a grid: the
// framed grid, a blank line and the score line.
func ScreenSize(width, height int) (int, int) {
	return max(width+2, minScoreWidth), height + 4
}

// minScoreWidth fits "SCORE : " and a few digits.
const minScoreWidth = 16

// Render draws the session's grid inside a frame with the score beneath it.
func (s *Session) Render(glyphs Glyphs, dst *core.Screen) {
	head, ok := s.Head()
	RenderGrid(s.grid, head, ok, s.score, glyphs, dst)
}

// RenderGrid draws g at the top-left of dst. Body cells take precedence over
// rewards and hazards; the head cell uses the head glyph when hasHead is set.
func RenderGrid(g *Grid, head core.Point, hasHead bool, score int, glyphs Glyphs, dst *core.Screen) {
	frame := core.NewRect(0, 0, g.Width()+2, g.Height()+2)
	dst.DrawFrame(frame, glyphs.Border.Rune, glyphs.Border.Color)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.Pt(x, y)
			cell, _ := g.Cell(p)

			glyph := glyphs.Empty
			switch {
			case cell.Occupied && hasHead && p == head:
				glyph = glyphs.Head
			case cell.Occupied:
				glyph = glyphs.Body
			case cell.Reward:
				glyph = glyphs.Reward
			case cell.Hazard:
				glyph = glyphs.Hazard
			}
			dst.SetColored(x+1, y+1, glyph.Rune, glyph.Color)
		}
	}

	dst.DrawText(0, frame.Bottom()+1, fmt.Sprintf("SCORE : %d", score))
}
