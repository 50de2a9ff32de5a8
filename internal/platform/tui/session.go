package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// sessionView is the screen a SessionModel is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow: menu -> round -> menu, with the
// scoreboard reachable from the menu. It backs both `snake menu` and every
// SSH connection.
type SessionModel struct {
	cfg      config.SnakeConfig
	runtime  core.RuntimeConfig
	store    *storage.Store
	player   string
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	notice   string
	quitting bool
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(cfg config.SnakeConfig, runtime core.RuntimeConfig, store *storage.Store, player string, logger *log.Logger) SessionModel {
	return SessionModel{
		cfg:     cfg,
		runtime: runtime,
		store:   store,
		player:  player,
		logger:  logger,
		menu:    NewMenuModel(runtime.ScreenW, runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so new screens open at the right size
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	m.menu = newMenu.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		var source ScoreSource
		if m.store != nil {
			source = m.store
		}
		m.scores = NewScoreboardModel(source, m.currentVariantID(), m.runtime.ScreenW, m.runtime.ScreenH)
		m.scores.embedded = true
		m.view = viewScores
		return m, nil

	case m.menu.Selected() != nil:
		opts := ModelOptions{
			Variant:   *m.menu.Selected(),
			Config:    m.cfg,
			Runtime:   m.runtime,
			Player:    m.player,
			Logger:    m.logger,
			CanGoBack: true,
		}
		if m.store != nil {
			opts.Store = m.store
		}
		// Every round from the menu gets its own seed
		opts.Runtime.Seed = time.Now().UnixNano()

		game, err := NewModel(opts)
		if err != nil {
			m.notice = err.Error()
			m.menu = NewMenuModel(m.runtime.ScreenW, m.runtime.ScreenH)
			return m, nil
		}
		m.notice = ""
		m.game = game
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// currentVariantID is the variant under the menu cursor.
func (m SessionModel) currentVariantID() string {
	if len(m.menu.variants) == 0 {
		return ""
	}
	return m.menu.variants[m.menu.cursor].ID
}

// updateGame handles updates when a round is on screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	m.game = newModel.(Model)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is on screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	m.scores = newModel.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.runtime.ScreenW, m.runtime.ScreenH)
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.notice != "" {
		view += "\n" + noticeStyle.Render(centerText(m.notice, m.runtime.ScreenW))
	}
	return view
}

// RunSession starts the menu-driven program locally.
func RunSession(cfg config.SnakeConfig, runtime core.RuntimeConfig, store *storage.Store, player string, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, runtime, store, player, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
