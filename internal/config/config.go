// Package config provides YAML-based level configuration loading and
// difficulty presets for the generator.
package config

import (
	"fmt"

	"github.com/vovakirdan/platformgen/internal/catalog"
	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
	"github.com/vovakirdan/platformgen/internal/session"
)

// Level is a complete level definition as stored in YAML.
type Level struct {
	ID         string           `yaml:"id"`
	Title      string           `yaml:"title"`
	Generation GenerationConfig `yaml:"generation"`
	Start      Triple           `yaml:"start"`
	Goal       GoalConfig       `yaml:"goal"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Retry      RetryConfig      `yaml:"retry"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Agent      AgentConfig      `yaml:"agent"`
}

// GenerationConfig holds the spacing bounds and odds for a run.
type GenerationConfig struct {
	MinPlatforms       int     `yaml:"min_platforms"`
	MaxPlatforms       int     `yaml:"max_platforms"`
	MinOffset          float64 `yaml:"min_offset"`
	MaxOffset          float64 `yaml:"max_offset"`
	MaxGemsPerPlatform int     `yaml:"max_gems_per_platform"`
	HazardRisk         float64 `yaml:"hazard_risk"`
	GemOdds            float64 `yaml:"gem_odds"`
	VerticalOffsetOdds float64 `yaml:"vertical_offset_odds"`
	InversionOdds      float64 `yaml:"inversion_odds"`
}

// GoalConfig places the goal marker.
type GoalConfig struct {
	Prototype string  `yaml:"prototype"`
	Height    float64 `yaml:"height"` // Above the final platform's position
}

// BoundaryConfig sizes the death boundary.
type BoundaryConfig struct {
	Margin    float64 `yaml:"margin"`
	Thickness float64 `yaml:"thickness"`
}

// RetryConfig bounds regeneration of degenerate layouts.
type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// CatalogConfig lists the prototypes a level draws from.
type CatalogConfig struct {
	Platforms []PlatformEntry `yaml:"platforms"`
	Hazards   []FeatureEntry  `yaml:"hazards"`
	Gems      []FeatureEntry  `yaml:"gems"`
}

// PlatformEntry is a platform prototype.
type PlatformEntry struct {
	ID        string `yaml:"id"`
	Footprint Triple `yaml:"footprint"` // [x, y, z] extents
}

// FeatureEntry is a hazard or gem prototype.
type FeatureEntry struct {
	ID    string `yaml:"id"`
	Value *int   `yaml:"value,omitempty"` // Gems only; defaults to catalog.DefaultGemValue
}

// AgentConfig tunes the simulated agent used by play.
type AgentConfig struct {
	FallOdds   float64 `yaml:"fall_odds"`
	HazardOdds float64 `yaml:"hazard_odds"`
	MaxHealth  float64 `yaml:"max_health"`
}

// Triple is an [x, y, z] sequence.
type Triple []float64

// Vec converts the triple to a vector. An empty triple is the origin.
func (t Triple) Vec() (core.Vec3, error) {
	switch len(t) {
	case 0:
		return core.Vec3{}, nil
	case 3:
		return core.V(t[0], t[1], t[2]), nil
	default:
		return core.Vec3{}, fmt.Errorf("config: expected 3 components, got %d", len(t))
	}
}

// ToLayout converts the level to a generator configuration.
func (l Level) ToLayout() (layout.Config, error) {
	start, err := l.Start.Vec()
	if err != nil {
		return layout.Config{}, fmt.Errorf("config: level %s start: %w", l.ID, err)
	}

	g := l.Generation
	return layout.Config{
		MinPlatforms:       g.MinPlatforms,
		MaxPlatforms:       g.MaxPlatforms,
		MinOffset:          g.MinOffset,
		MaxOffset:          g.MaxOffset,
		MaxGemsPerPlatform: g.MaxGemsPerPlatform,
		HazardRisk:         g.HazardRisk,
		GemOdds:            g.GemOdds,
		VerticalOffsetOdds: g.VerticalOffsetOdds,
		InversionOdds:      g.InversionOdds,
		StartPosition:      start,
		GoalPrototype:      l.Goal.Prototype,
		GoalHeight:         l.Goal.Height,
		BoundaryMargin:     l.Boundary.Margin,
		BoundaryThickness:  l.Boundary.Thickness,
		MaxAttempts:        l.Retry.MaxAttempts,
	}, nil
}

// ToCatalog converts the level's prototype lists.
func (l Level) ToCatalog() (catalog.Catalog, error) {
	var c catalog.Catalog

	for _, p := range l.Catalog.Platforms {
		fp, err := p.Footprint.Vec()
		if err != nil {
			return catalog.Catalog{}, fmt.Errorf("config: level %s platform %q footprint: %w", l.ID, p.ID, err)
		}
		c.Platforms = append(c.Platforms, catalog.PlatformPrototype{ID: p.ID, Footprint: fp})
	}
	for _, h := range l.Catalog.Hazards {
		c.Hazards = append(c.Hazards, catalog.FeaturePrototype{ID: h.ID})
	}
	for _, g := range l.Catalog.Gems {
		value := catalog.DefaultGemValue
		if g.Value != nil {
			value = *g.Value
		}
		c.Gems = append(c.Gems, catalog.FeaturePrototype{ID: g.ID, Value: value})
	}
	return c, nil
}

// ToAgent converts the agent section.
func (l Level) ToAgent() session.Agent {
	return session.Agent{
		FallOdds:   l.Agent.FallOdds,
		HazardOdds: l.Agent.HazardOdds,
		MaxHealth:  l.Agent.MaxHealth,
	}
}

// Generator builds a layout generator from the level.
func (l Level) Generator(opts ...layout.Option) (*layout.Generator, error) {
	cfg, err := l.ToLayout()
	if err != nil {
		return nil, err
	}
	cat, err := l.ToCatalog()
	if err != nil {
		return nil, err
	}
	return layout.New(cfg, cat, opts...)
}
