// Package config provides YAML-based configuration loading for the snake
// game: grid size, renderer glyphs, key bindings and round rules.
package config

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Glyphs GlyphsConfig `yaml:"glyphs"`
	Keys   KeysConfig   `yaml:"keys"`
	Rules  RulesConfig  `yaml:"rules"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GlyphConfig is a single renderer glyph.
type GlyphConfig struct {
	Rune  string `yaml:"rune"`  // exactly one character
	Color string `yaml:"color"` // color name, empty for the terminal default
}

// GlyphsConfig defines the renderer legend.
type GlyphsConfig struct {
	Head   GlyphConfig `yaml:"head"`
	Body   GlyphConfig `yaml:"body"`
	Reward GlyphConfig `yaml:"reward"`
	Hazard GlyphConfig `yaml:"hazard"`
	Empty  GlyphConfig `yaml:"empty"`
	Border GlyphConfig `yaml:"border"`
}

// KeysConfig lists the keys bound to each direction.
// Names follow Bubble Tea key strings ("up", "w", "ctrl+p").
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// RulesConfig toggles round rules.
type RulesConfig struct {
	Hazards bool `yaml:"hazards"` // false disables hazards for every variant
}
