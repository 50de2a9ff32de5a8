package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirections(t *testing.T) {
	km := NewKeyMap(config.DefaultSnakeConfig())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want snake.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, snake.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, snake.DirRight},
		{"classic r", runeKey('r'), snake.DirUp},
		{"classic c", runeKey('c'), snake.DirDown},
		{"classic d", runeKey('d'), snake.DirLeft},
		{"classic f", runeKey('f'), snake.DirRight},
		{"vim k", runeKey('k'), snake.DirUp},
		{"vim l", runeKey('l'), snake.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Direction(tt.msg)
			if !ok || got != tt.want {
				t.Errorf("Direction(%q) = %v, %v; expected %v", tt.msg.String(), got, ok, tt.want)
			}
		})
	}

	if _, ok := km.Direction(runeKey('z')); ok {
		t.Error("z should not map to a direction")
	}
}

func TestKeyMapConfigCase(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Keys.Right = []string{"F", "Right"}
	km := NewKeyMap(cfg)

	if d, ok := km.Direction(runeKey('f')); !ok || d != snake.DirRight {
		t.Errorf("configured F should match the f key, got %v, %v", d, ok)
	}
	if d, ok := km.Direction(tea.KeyMsg{Type: tea.KeyRight}); !ok || d != snake.DirRight {
		t.Errorf("configured Right should match the arrow key, got %v, %v", d, ok)
	}
}

func TestKeyMapGameOver(t *testing.T) {
	km := NewKeyMap(config.DefaultSnakeConfig())

	if km.Restart.Enabled() || km.Back.Enabled() {
		t.Fatal("restart and back should start disabled")
	}

	km.setGameOver(true, false)
	if !km.Restart.Enabled() {
		t.Error("restart should be enabled after game over")
	}
	if km.Back.Enabled() {
		t.Error("back should stay disabled without a menu")
	}
	if _, ok := km.Direction(runeKey('r')); ok {
		t.Error("direction keys should be disabled after game over")
	}

	km.setGameOver(false, true)
	if km.Restart.Enabled() || km.Back.Enabled() {
		t.Error("restart and back should be disabled while playing")
	}
	if _, ok := km.Direction(runeKey('r')); !ok {
		t.Error("direction keys should be enabled while playing")
	}
}

func TestFixedKeysAreReserved(t *testing.T) {
	k := NewKeyMap(config.DefaultSnakeConfig())

	for _, b := range []struct {
		name string
		keys []string
	}{
		{"screenshot", k.Screenshot.Keys()},
		{"back", k.Back.Keys()},
		{"quit", k.Quit.Keys()},
	} {
		for _, key := range b.keys {
			if !slices.Contains(config.ReservedKeys, key) {
				t.Errorf("%s key %q is not reserved, a direction could shadow it", b.name, key)
			}
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
