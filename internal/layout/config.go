package layout

import (
	"math"

	"github.com/vovakirdan/platformgen/internal/core"
)

// DefaultGoalPrototype is the prototype id used for the goal marker.
const DefaultGoalPrototype = "goal"

// BoundaryPrototype is the prototype id the boundary volume is placed with.
const BoundaryPrototype = "death-boundary"

// Config bounds and odds for a generation run. It is read-only while a run
// is in progress.
type Config struct {
	MinPlatforms int // Minimum chain length, >= 1
	MaxPlatforms int // Maximum chain length, >= MinPlatforms

	MinOffset float64 // Minimum gap between platforms, > 0
	MaxOffset float64 // Maximum gap between platforms, >= MinOffset

	MaxGemsPerPlatform int // Upper bound on gems per deposit; 0 disables gems

	HazardRisk         float64 // Probability a large enough platform gets a hazard
	GemOdds            float64 // Probability a platform gets a gem deposit
	VerticalOffsetOdds float64 // Probability a step also moves vertically
	InversionOdds      float64 // Probability a signed offset is negated

	StartPosition core.Vec3 // Where the first platform is placed
	GoalPrototype string    // Prototype id for the goal marker
	GoalHeight    float64   // Goal height above the final platform position

	BoundaryMargin    float64 // Gap between the lowest platform and the boundary
	BoundaryThickness float64 // Vertical extent of the boundary slab

	MaxAttempts int // Retry ceiling for degenerate start platforms
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	return Config{
		MinPlatforms:       15,
		MaxPlatforms:       100,
		MinOffset:          2.0,
		MaxOffset:          6.0,
		MaxGemsPerPlatform: 8,
		HazardRisk:         0.1,
		GemOdds:            0.5,
		VerticalOffsetOdds: 0.5,
		InversionOdds:      0.5,
		GoalPrototype:      DefaultGoalPrototype,
		GoalHeight:         2.0,
		BoundaryMargin:     20.0,
		BoundaryThickness:  10.0,
		MaxAttempts:        32,
	}
}

// Validate checks the documented bounds and returns a *ConfigError for the
// first field that violates them.
func (c Config) Validate() error {
	if c.MinPlatforms < 1 {
		return configErrorf("min_platforms", "must be at least 1, got %d", c.MinPlatforms)
	}
	if c.MinPlatforms > c.MaxPlatforms {
		return configErrorf("max_platforms", "min_platforms %d exceeds max_platforms %d", c.MinPlatforms, c.MaxPlatforms)
	}
	if !finitePositive(c.MinOffset) {
		return configErrorf("min_offset", "must be positive, got %v", c.MinOffset)
	}
	if !finitePositive(c.MaxOffset) || c.MaxOffset < c.MinOffset {
		return configErrorf("max_offset", "must be >= min_offset %v, got %v", c.MinOffset, c.MaxOffset)
	}
	if c.MaxGemsPerPlatform < 0 {
		return configErrorf("max_gems_per_platform", "must not be negative, got %d", c.MaxGemsPerPlatform)
	}

	odds := []struct {
		field string
		value float64
	}{
		{"hazard_risk", c.HazardRisk},
		{"gem_odds", c.GemOdds},
		{"vertical_offset_odds", c.VerticalOffsetOdds},
		{"inversion_odds", c.InversionOdds},
	}
	for _, o := range odds {
		if !(o.value >= 0 && o.value <= 1) {
			return configErrorf(o.field, "must be within [0, 1], got %v", o.value)
		}
	}

	if !finite(c.StartPosition.X) || !finite(c.StartPosition.Y) || !finite(c.StartPosition.Z) {
		return configErrorf("start_position", "must be finite, got %v", c.StartPosition)
	}
	if c.GoalPrototype == "" {
		return configErrorf("goal_prototype", "must not be empty")
	}
	if !finite(c.GoalHeight) {
		return configErrorf("goal_height", "must be finite, got %v", c.GoalHeight)
	}
	if !finitePositive(c.BoundaryMargin) {
		return configErrorf("boundary_margin", "must be positive, got %v", c.BoundaryMargin)
	}
	if !finitePositive(c.BoundaryThickness) {
		return configErrorf("boundary_thickness", "must be positive, got %v", c.BoundaryThickness)
	}
	if c.MaxAttempts < 1 {
		return configErrorf("max_attempts", "must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePositive(v float64) bool {
	return finite(v) && v > 0
}
