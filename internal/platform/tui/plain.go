package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// PlainOptions configures a plain-mode game.
type PlainOptions struct {
	Session *snake.Session
	Config  config.SnakeConfig
	In      io.Reader
	Out     io.Writer
	// ScreenPath, when set, receives every frame instead of Out; the file is
	// rewritten each turn.
	ScreenPath string
	Logger     *log.Logger
}

// PlainResult reports how a plain-mode game ended.
type PlainResult struct {
	Finished bool // the round reached a terminal state
	Quit     bool // the player typed q or input ran out first
}

// plainPrompt builds the turn prompt from the first single-letter binding of
// each direction, falling back to the first binding.
func plainPrompt(cfg config.SnakeConfig) string {
	label := func(d snake.Direction) string {
		keys := cfg.KeysFor(d)
		for _, k := range keys {
			k = strings.TrimSpace(k)
			if utf8.RuneCountInString(k) == 1 {
				return strings.ToUpper(k)
			}
		}
		if len(keys) > 0 {
			return keys[0]
		}
		return "?"
	}
	return fmt.Sprintf("(Up: %s | Down: %s | <-: %s | ->: %s): ",
		label(snake.DirUp), label(snake.DirDown), label(snake.DirLeft), label(snake.DirRight))
}

// RunPlain plays a round with line-oriented input: one direction per line,
// one turn per accepted line. Invalid input and reversals are reported and
// the prompt repeats. Input is case-insensitive; "q" quits.
func RunPlain(opts PlainOptions) (PlainResult, error) {
	if opts.Session == nil {
		return PlainResult{}, errors.New("plain: nil session")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := opts.Session
	bindings := opts.Config.Bindings()
	prompt := plainPrompt(opts.Config)
	glyphs := opts.Config.RendererGlyphs()
	screen := core.NewScreen(snake.ScreenSize(s.Config().Width, s.Config().Height))

	if err := drawPlain(s, glyphs, screen, opts); err != nil {
		return PlainResult{}, err
	}

	scanner := bufio.NewScanner(opts.In)
	for s.Alive() {
		fmt.Fprint(opts.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(opts.Out)
			if err := scanner.Err(); err != nil {
				return PlainResult{Quit: true}, fmt.Errorf("plain: read input: %w", err)
			}
			return PlainResult{Quit: true}, nil
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		d, ok := bindings[input]
		if !ok {
			if input == "q" || input == "quit" {
				return PlainResult{Quit: true}, nil
			}
			fmt.Fprintf(opts.Out, "Unknown direction %q.\n", scanner.Text())
			continue
		}

		_, err := s.Turn(d)
		switch {
		case errors.Is(err, snake.ErrReversal):
			fmt.Fprintln(opts.Out, "You can't turn back on yourself.")
			continue
		case err != nil && s.Alive():
			return PlainResult{}, err
		case err != nil:
			opts.Logger.Warn("turn ended the round", "error", err)
		}

		if err := drawPlain(s, glyphs, screen, opts); err != nil {
			return PlainResult{}, err
		}
	}

	fmt.Fprintf(opts.Out, "Game over!! %s\n", s.Reason().Message())
	return PlainResult{Finished: true}, nil
}

// drawPlain renders the session as plain text to the screen file or Out.
func drawPlain(s *snake.Session, glyphs snake.Glyphs, screen *core.Screen, opts PlainOptions) error {
	screen.Clear()
	s.Render(glyphs, screen)
	frame := trimFrame(screen.String())

	if opts.ScreenPath != "" {
		if err := os.WriteFile(opts.ScreenPath, []byte(frame), 0o644); err != nil {
			return fmt.Errorf("plain: write screen: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(opts.Out, frame)
	return err
}

// trimFrame strips trailing spaces from every row and ends the frame with a
// newline.
func trimFrame(frame string) string {
	lines := strings.Split(frame, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}
