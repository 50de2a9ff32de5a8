package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// ReservedKeys belong to the fixed TUI bindings and the plain prompt. No
// direction may use them.
var ReservedKeys = []string{"q", "quit", "ctrl+c", "ctrl+s", "esc", "b"}

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Fields missing from a file keep their default values. The result is
// validated before it is returned.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable, malformed or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (SnakeConfig, bool) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Validate reports the first invalid field.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}

	for _, g := range c.Glyphs.named() {
		if utf8.RuneCountInString(g.glyph.Rune) != 1 {
			return fmt.Errorf("%w: glyphs.%s.rune must be one character, got %q", ErrInvalid, g.name, g.glyph.Rune)
		}
		if _, ok := core.ParseColor(g.glyph.Color); !ok {
			return fmt.Errorf("%w: glyphs.%s.color: unknown color %q", ErrInvalid, g.name, g.glyph.Color)
		}
	}

	seen := make(map[string]string)
	for _, k := range c.Keys.named() {
		if len(k.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, k.name)
		}
		for _, key := range k.keys {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				return fmt.Errorf("%w: keys.%s has an empty binding", ErrInvalid, k.name)
			}
			if slices.Contains(ReservedKeys, key) {
				return fmt.Errorf("%w: keys.%s: %q is reserved", ErrInvalid, k.name, key)
			}
			if other, ok := seen[key]; ok && other != k.name {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, other, k.name)
			}
			seen[key] = k.name
		}
	}
	return nil
}

type namedGlyph struct {
	name  string
	glyph GlyphConfig
}

func (g GlyphsConfig) named() []namedGlyph {
	return []namedGlyph{
		{"head", g.Head},
		{"body", g.Body},
		{"reward", g.Reward},
		{"hazard", g.Hazard},
		{"empty", g.Empty},
		{"border", g.Border},
	}
}

type namedKeys struct {
	name string
	dir  snake.Direction
	keys []string
}

func (k KeysConfig) named() []namedKeys {
	return []namedKeys{
		{"up", snake.DirUp, k.Up},
		{"down", snake.DirDown, k.Down},
		{"left", snake.DirLeft, k.Left},
		{"right", snake.DirRight, k.Right},
	}
}

// Round returns the session configuration. hazards is the variant's own
// setting; rules.hazards can only switch it off.
func (c SnakeConfig) Round(hazards bool) snake.Config {
	return snake.Config{
		Width:   c.Grid.Width,
		Height:  c.Grid.Height,
		Hazards: hazards && c.Rules.Hazards,
	}
}

// RendererGlyphs converts the glyph section. It assumes a validated config;
// malformed entries fall back to the default legend.
func (c SnakeConfig) RendererGlyphs() snake.Glyphs {
	def := snake.DefaultGlyphs()
	return snake.Glyphs{
		Head:   toGlyph(c.Glyphs.Head, def.Head),
		Body:   toGlyph(c.Glyphs.Body, def.Body),
		Reward: toGlyph(c.Glyphs.Reward, def.Reward),
		Hazard: toGlyph(c.Glyphs.Hazard, def.Hazard),
		Empty:  toGlyph(c.Glyphs.Empty, def.Empty),
		Border: toGlyph(c.Glyphs.Border, def.Border),
	}
}

func toGlyph(g GlyphConfig, fallback snake.Glyph) snake.Glyph {
	r, size := utf8.DecodeRuneInString(g.Rune)
	if size == 0 || size != len(g.Rune) {
		return fallback
	}
	c, ok := core.ParseColor(g.Color)
	if !ok {
		return fallback
	}
	return snake.Glyph{Rune: r, Color: c}
}

// Bindings maps every bound key, lowercased, to its direction.
func (c SnakeConfig) Bindings() map[string]snake.Direction {
	out := make(map[string]snake.Direction)
	for _, k := range c.Keys.named() {
		for _, key := range k.keys {
			out[strings.ToLower(strings.TrimSpace(key))] = k.dir
		}
	}
	return out
}

// KeysFor returns the keys bound to d as written in the config.
func (c SnakeConfig) KeysFor(d snake.Direction) []string {
	for _, k := range c.Keys.named() {
		if k.dir == d {
			return k.keys
		}
	}
	return nil
}
