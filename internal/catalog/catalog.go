// Package catalog holds the fixed prototype collections a layout draws from:
// platform footprints, hazards and gems.
package catalog

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/platformgen/internal/core"
)

// DefaultGemValue is the score a gem awards when its prototype does not set one.
const DefaultGemValue = 100

// ErrEmpty is returned when a prototype list that must be drawn from is empty.
var ErrEmpty = errors.New("catalog: empty")

// PlatformPrototype is a platform shape that can be placed in a layout.
type PlatformPrototype struct {
	ID        string
	Footprint core.Vec3 // Bounding extents; all components > 0
}

// FeaturePrototype is a hazard or gem that can decorate a platform.
type FeaturePrototype struct {
	ID    string
	Value int // Score awarded on pickup (gems only)
}

// Catalog groups the three prototype collections.
type Catalog struct {
	Platforms []PlatformPrototype
	Hazards   []FeaturePrototype
	Gems      []FeaturePrototype
}

// Needs describes which collections a generation run will draw from.
type Needs struct {
	Hazards bool
	Gems    bool
}

// Validate checks that every prototype is well formed and that each
// collection named in needs is non-empty. Platforms are always required.
func (c Catalog) Validate(needs Needs) error {
	if len(c.Platforms) == 0 {
		return fmt.Errorf("%w: no platform prototypes", ErrEmpty)
	}
	seen := make(map[string]bool, len(c.Platforms))
	for i, p := range c.Platforms {
		if p.ID == "" {
			return fmt.Errorf("catalog: platform %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("catalog: duplicate platform id %q", p.ID)
		}
		seen[p.ID] = true
		if !p.Footprint.Positive() {
			return fmt.Errorf("catalog: platform %q footprint %v must be positive", p.ID, p.Footprint)
		}
	}

	if needs.Hazards && len(c.Hazards) == 0 {
		return fmt.Errorf("%w: no hazard prototypes", ErrEmpty)
	}
	if needs.Gems && len(c.Gems) == 0 {
		return fmt.Errorf("%w: no gem prototypes", ErrEmpty)
	}
	for i, h := range c.Hazards {
		if h.ID == "" {
			return fmt.Errorf("catalog: hazard %d has no id", i)
		}
	}
	for i, g := range c.Gems {
		if g.ID == "" {
			return fmt.Errorf("catalog: gem %d has no id", i)
		}
		if g.Value < 0 {
			return fmt.Errorf("catalog: gem %q has negative value %d", g.ID, g.Value)
		}
	}
	return nil
}

// PickPlatform draws a platform prototype uniformly.
// The catalog must have been validated.
func (c Catalog) PickPlatform(rng core.RandomSource) PlatformPrototype {
	return c.Platforms[rng.IntRange(0, len(c.Platforms)-1)]
}

// PickHazard draws a hazard prototype uniformly.
func (c Catalog) PickHazard(rng core.RandomSource) FeaturePrototype {
	return c.Hazards[rng.IntRange(0, len(c.Hazards)-1)]
}

// PickGem draws a gem prototype uniformly.
func (c Catalog) PickGem(rng core.RandomSource) FeaturePrototype {
	return c.Gems[rng.IntRange(0, len(c.Gems)-1)]
}

// TallestPlatform returns the largest footprint height in the catalog.
func (c Catalog) TallestPlatform() float64 {
	var tallest float64
	for _, p := range c.Platforms {
		if p.Footprint.Y > tallest {
			tallest = p.Footprint.Y
		}
	}
	return tallest
}
