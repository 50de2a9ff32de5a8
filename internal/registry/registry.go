// Package registry provides a global registry of snake variants.
// Variants register themselves in init() functions, allowing the CLI and the
// SSH server to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultVariant is played when no variant is named.
const DefaultVariant = "plus"

// Variant is a named rule set for a round.
type Variant struct {
	// ID is a unique identifier (e.g., "plus", "classic").
	// Used for CLI arguments and score storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown by `snake list`.
	Description string

	// Hazards spawns a hazard alongside every reward.
	Hazards bool
}

// Round builds the session configuration for this variant.
func (v Variant) Round(cfg config.SnakeConfig) snake.Config {
	return cfg.Round(v.Hazards)
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without ID")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
