// Package registry provides a global registry of level presets.
// Presets register themselves in init() functions, allowing the CLI and
// the SSH server to discover levels by name without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/platformgen/internal/config"
)

// Preset is a named level that can be loaded on demand.
type Preset interface {
	// ID returns a unique identifier for this preset (e.g., "classic").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Level loads the preset's level definition. Loading happens on every
	// call so user overrides on disk are picked up.
	Level() (config.Level, error)
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a preset.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Panics if a preset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PresetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a preset by its ID.
// Returns an error if the preset ID is not registered.
func Create(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(), nil
}

// Level is a shortcut for Create followed by Preset.Level.
func Level(id string) (config.Level, error) {
	p, err := Create(id)
	if err != nil {
		return config.Level{}, err
	}
	return p.Level()
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
