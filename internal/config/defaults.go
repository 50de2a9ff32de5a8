package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  25,
			Height: 15,
		},
		Glyphs: GlyphsConfig{
			Head:   GlyphConfig{Rune: "O", Color: "bright_green"},
			Body:   GlyphConfig{Rune: "O", Color: "green"},
			Reward: GlyphConfig{Rune: "A", Color: "bright_red"},
			Hazard: GlyphConfig{Rune: "X", Color: "yellow"},
			Empty:  GlyphConfig{Rune: " "},
			Border: GlyphConfig{Rune: "#", Color: "gray"},
		},
		Keys: KeysConfig{
			Up:    []string{"up", "r", "k"},
			Down:  []string{"down", "c", "j"},
			Left:  []string{"left", "d", "h"},
			Right: []string{"right", "f", "l"},
		},
		Rules: RulesConfig{
			Hazards: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
