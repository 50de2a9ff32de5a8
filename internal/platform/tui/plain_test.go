package tui

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newPlainSession(t *testing.T) *snake.Session {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	s, err := snake.NewSession(cfg.Round(false), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestPlainPrompt(t *testing.T) {
	got := plainPrompt(config.DefaultSnakeConfig())
	want := "(Up: R | Down: C | <-: D | ->: F): "
	if got != want {
		t.Errorf("plainPrompt() = %q, expected %q", got, want)
	}
}

func TestRunPlainToGameOver(t *testing.T) {
	s := newPlainSession(t)
	// Right once, an unknown key, a reversal, then up until the head leaves
	// the grid from row 7.
	input := "f\nx\nD\n" + strings.Repeat("r\n", 8)
	var out bytes.Buffer

	res, err := RunPlain(PlainOptions{
		Session: s,
		Config:  config.DefaultSnakeConfig(),
		In:      strings.NewReader(input),
		Out:     &out,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}
	if !res.Finished || res.Quit {
		t.Errorf("result = %+v, expected a finished round", res)
	}
	if s.Turns() != 9 {
		t.Errorf("Turns() = %d, expected 9", s.Turns())
	}
	if s.Reason() != snake.ReasonOutOfBounds {
		t.Errorf("Reason() = %v, expected out_of_bounds", s.Reason())
	}

	text := out.String()
	for _, want := range []string{
		"(Up: R | Down: C | <-: D | ->: F): ",
		`Unknown direction "x".`,
		"You can't turn back on yourself.",
		"SCORE : ",
		"Game over!!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.HasPrefix(text, strings.Repeat("#", 27)+"\n") {
		t.Errorf("output should start with the top border, got %q", text[:min(len(text), 40)])
	}
}

func TestRunPlainEndOfInput(t *testing.T) {
	s := newPlainSession(t)
	var out bytes.Buffer

	res, err := RunPlain(PlainOptions{
		Session: s,
		Config:  config.DefaultSnakeConfig(),
		In:      strings.NewReader("f\n"),
		Out:     &out,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}
	if res.Finished || !res.Quit {
		t.Errorf("result = %+v, expected quit before the round ended", res)
	}
	if !s.Alive() {
		t.Error("running out of input must not end the round")
	}
}

func TestRunPlainQuit(t *testing.T) {
	s := newPlainSession(t)
	var out bytes.Buffer

	res, err := RunPlain(PlainOptions{
		Session: s,
		Config:  config.DefaultSnakeConfig(),
		In:      strings.NewReader("Q\nf\n"),
		Out:     &out,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}
	if !res.Quit || s.Turns() != 0 {
		t.Errorf("q should stop before any turn, result %+v turns %d", res, s.Turns())
	}
}

func TestRunPlainScreenFile(t *testing.T) {
	s := newPlainSession(t)
	path := filepath.Join(t.TempDir(), "screen.txt")
	var out bytes.Buffer

	_, err := RunPlain(PlainOptions{
		Session:    s,
		Config:     config.DefaultSnakeConfig(),
		In:         strings.NewReader("f\n"),
		Out:        &out,
		ScreenPath: path,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screen file not written: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 19 {
		t.Fatalf("screen file has %d lines, expected 19", len(lines))
	}
	if lines[0] != strings.Repeat("#", 27) || lines[16] != strings.Repeat("#", 27) {
		t.Error("screen file should be framed with #")
	}
	if lines[17] != "" || lines[18] != "SCORE : 0" && lines[18] != "SCORE : 1" {
		t.Errorf("score lines = %q, %q", lines[17], lines[18])
	}
	if strings.Contains(out.String(), "#####") {
		t.Error("frames should go to the screen file, not the terminal")
	}
}
