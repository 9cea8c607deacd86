package config

import (
	_ "embed"

	"github.com/vovakirdan/platformgen/internal/layout"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/tutorial.yaml
var defaultTutorialYAML []byte

//go:embed defaults/gauntlet.yaml
var defaultGauntletYAML []byte

// DefaultLevelID is loaded when no level is named.
const DefaultLevelID = "classic"

// BuiltinIDs lists the levels with embedded defaults.
func BuiltinIDs() []string {
	return []string{"classic", "gauntlet", "tutorial"}
}

// DefaultLevel returns the classic level, used as the base every YAML file
// is decoded over so omitted fields keep working values.
func DefaultLevel() Level {
	d := layout.DefaultConfig()
	gem := 100
	return Level{
		ID:    DefaultLevelID,
		Title: "Classic Climb",
		Generation: GenerationConfig{
			MinPlatforms:       d.MinPlatforms,
			MaxPlatforms:       d.MaxPlatforms,
			MinOffset:          d.MinOffset,
			MaxOffset:          d.MaxOffset,
			MaxGemsPerPlatform: d.MaxGemsPerPlatform,
			HazardRisk:         d.HazardRisk,
			GemOdds:            d.GemOdds,
			VerticalOffsetOdds: d.VerticalOffsetOdds,
			InversionOdds:      d.InversionOdds,
		},
		Start: Triple{0, 0, 0},
		Goal: GoalConfig{
			Prototype: d.GoalPrototype,
			Height:    d.GoalHeight,
		},
		Boundary: BoundaryConfig{
			Margin:    d.BoundaryMargin,
			Thickness: d.BoundaryThickness,
		},
		Retry: RetryConfig{
			MaxAttempts: d.MaxAttempts,
		},
		Catalog: CatalogConfig{
			Platforms: []PlatformEntry{
				{ID: "slab", Footprint: Triple{8, 1, 8}},
				{ID: "plank", Footprint: Triple{10, 1, 3}},
				{ID: "tile", Footprint: Triple{4, 1, 4}},
			},
			Hazards: []FeatureEntry{
				{ID: "spikes"},
			},
			Gems: []FeatureEntry{
				{ID: "gem", Value: &gem},
			},
		},
		Agent: AgentConfig{
			FallOdds:   0.02,
			HazardOdds: 0.25,
			MaxHealth:  100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a level.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "classic":
		return defaultClassicYAML
	case "tutorial":
		return defaultTutorialYAML
	case "gauntlet":
		return defaultGauntletYAML
	default:
		return nil
	}
}
