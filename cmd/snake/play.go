package main

import (
	"io"
	"math/rand"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagVariant    string
	flagPlain      bool
	flagScreenPath string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start a round of the given variant (default: plus).

The game is turn-based: the snake moves one cell for every direction you
give it and waits otherwise.

Controls (configurable in snake.yaml):
  Up     - Arrow up / R / K
  Down   - Arrow down / C / J
  Left   - Arrow left / D / H
  Right  - Arrow right / F / L
  R      - Restart (after game over)
  Ctrl+S - Screenshot to ~/.snake/screenshots
  Q      - Quit

Plain mode reads one direction per line from stdin, the way the classic
version did. It is used automatically when stdin or stdout is not a terminal.

Examples:
  snake play
  snake play classic
  snake play --seed 42
  snake play --plain
  snake play --plain --screen screen.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", registry.DefaultVariant, "Variant to play")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-prompt mode instead of the full-screen UI")
	playCmd.Flags().StringVar(&flagScreenPath, "screen", "", "Plain mode: write each frame to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := flagVariant
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		fail("unknown variant %q. Run 'snake list' to see available variants.", variantID)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	plain := flagPlain || flagScreenPath != "" ||
		!term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd()))

	var fallback io.Writer = io.Discard
	if plain {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if plain {
		if err := playPlain(variant, cfg, seed, store, logger); err != nil {
			fail("%v", err)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.ModelOptions{
		Variant: variant,
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: seed},
		Player:  playerName(),
		Logger:  logger,
	}
	if store != nil {
		opts.Store = store
	}
	if err := tui.Run(opts); err != nil {
		fail("running game: %v", err)
	}
}

// playPlain runs the line-prompt game on stdin/stdout and records the
// round if it finished.
func playPlain(variant registry.Variant, cfg config.SnakeConfig, seed int64, store *storage.Store, logger *log.Logger) error {
	session, err := snake.NewSession(variant.Round(cfg), rand.New(rand.NewSource(seed)), snake.WithLogger(logger))
	if err != nil {
		return err
	}
	defer session.Close()

	logger.Debug("plain round started", "variant", variant.ID, "seed", seed)
	res, err := tui.RunPlain(tui.PlainOptions{
		Session:    session,
		Config:     cfg,
		In:         os.Stdin,
		Out:        os.Stdout,
		ScreenPath: flagScreenPath,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if !res.Finished || store == nil {
		return nil
	}

	_, err = store.SaveScore(storage.Entry{
		Variant: variant.ID,
		Player:  playerName(),
		Score:   session.Score(),
		Length:  session.FinalLength(),
		Turns:   session.Turns(),
		Reason:  session.Reason().String(),
	})
	if err != nil {
		logger.Error("could not save score", "error", err)
	}
	return nil
}

// playerName is the local account name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
