package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreSaver records finished rounds. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(e storage.Entry) (int64, error)
}

// ModelOptions configures a round model.
type ModelOptions struct {
	Variant registry.Variant
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   ScoreSaver // optional
	Player  string
	Logger  *log.Logger
	// CanGoBack enables the back-to-menu binding after a round ends.
	CanGoBack bool
}

// Model is the Bubble Tea model for one game of snake. The game is
// turn-based: every direction key plays exactly one turn and nothing moves
// between key presses.
type Model struct {
	opts       ModelOptions
	glyphs     snake.Glyphs
	keys       KeyMap
	help       help.Model
	session    *snake.Session
	screen     *core.Screen
	roundID    string
	notice     string
	saveErr    error
	width      int
	height     int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a model and starts the first round.
func NewModel(opts ModelOptions) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:   opts,
		glyphs: opts.Config.RendererGlyphs(),
		keys:   NewKeyMap(opts.Config),
		help:   h,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
	if err := m.newRound(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRound replaces the session with a fresh one seeded from the runtime
// config.
func (m *Model) newRound() error {
	round := m.opts.Variant.Round(m.opts.Config)
	rng := rand.New(rand.NewSource(m.opts.Runtime.Seed))

	session, err := snake.NewSession(round, rng, snake.WithLogger(m.opts.Logger))
	if err != nil {
		return fmt.Errorf("start %s round: %w", m.opts.Variant.ID, err)
	}
	if m.session != nil {
		m.session.Close()
	}

	m.session = session
	m.roundID = uuid.NewString()
	m.screen = core.NewScreen(snake.ScreenSize(round.Width, round.Height))
	m.notice = ""
	m.saveErr = nil
	m.scoreSaved = false
	m.keys.setGameOver(false, m.opts.CanGoBack)

	m.opts.Logger.Info("round started",
		"round", m.roundID,
		"variant", m.opts.Variant.ID,
		"seed", m.opts.Runtime.Seed,
		"player", m.opts.Player,
	)
	return nil
}

// Init implements tea.Model. There is no tick: the game waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.notice = fmt.Sprintf("screenshot failed: %v", err)
		} else {
			m.notice = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.opts.Runtime.Seed = time.Now().UnixNano()
		if err := m.newRound(); err != nil {
			m.notice = err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		m.session.Close()
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.playTurn(d)
	}
	return m, nil
}

// playTurn plays one turn and records the round once it is over.
func (m *Model) playTurn(d snake.Direction) {
	m.notice = ""

	_, err := m.session.Turn(d)
	switch {
	case errors.Is(err, snake.ErrReversal):
		m.notice = "can't reverse into yourself"
		return
	case errors.Is(err, snake.ErrSessionOver):
		return
	case err != nil:
		m.opts.Logger.Warn("turn ended the round", "round", m.roundID, "error", err)
	}

	if !m.session.Alive() {
		m.keys.setGameOver(true, m.opts.CanGoBack)
		m.saveScore()
	}
}

// saveScore records the finished round once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveScore(storage.Entry{
		RoundID: m.roundID,
		Variant: m.opts.Variant.ID,
		Player:  m.opts.Player,
		Score:   m.session.Score(),
		Length:  m.session.FinalLength(),
		Turns:   m.session.Turns(),
		Reason:  m.session.Reason().String(),
	})
	if err != nil {
		m.saveErr = err
		m.opts.Logger.Error("could not save score", "round", m.roundID, "error", err)
	}
}

// saveScreenshot writes the current frame to ~/.snake/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.Variant.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (m *Model) draw() {
	m.screen.Clear()
	m.session.Render(m.glyphs, m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.draw()
	if m.width > 0 && m.height > 0 && (m.width < m.screen.Width() || m.height < m.screen.Height()+3) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.",
			m.screen.Width(), m.screen.Height()+3, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  turn %d  length %d",
		m.opts.Variant.Title, m.session.Turns(), m.session.FinalLength())))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	switch {
	case !m.session.Alive():
		b.WriteString(gameOverStyle.Render("Game over!! " + m.session.Reason().Message()))
		if m.saveErr != nil {
			b.WriteString(noticeStyle.Render("  (score not saved)"))
		}
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Session returns the current round.
func (m Model) Session() *snake.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a full-screen program for one variant.
func Run(opts ModelOptions) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
