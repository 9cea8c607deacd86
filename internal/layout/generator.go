// Package layout generates a chain of platforms from a start position to a
// goal, decorates it with hazards and gems, and derives a death boundary
// beneath it. Generation is a pure function of its configuration, catalog
// and random source; side effects are deferred to Apply.
package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformgen/internal/catalog"
	"github.com/vovakirdan/platformgen/internal/core"
)

// Generator produces layouts for a fixed configuration and catalog.
// A Generator holds no per-run state and may be shared between goroutines
// as long as each call receives its own RandomSource.
type Generator struct {
	cfg     Config
	catalog catalog.Catalog
	logger  *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes generator debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New validates cfg and cat and returns a ready Generator.
// All configuration errors are reported here, before any placement.
func New(cfg Config, cat catalog.Catalog, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	needs := catalog.Needs{
		Hazards: cfg.HazardRisk > 0,
		Gems:    cfg.GemOdds > 0 && cfg.MaxGemsPerPlatform > 0,
	}
	if err := cat.Validate(needs); err != nil {
		return nil, &ConfigError{Field: "catalog", Reason: err.Error(), Err: err}
	}
	// The boundary top sits BoundaryThickness/2 above its center.
	tallest := cat.TallestPlatform()
	if cfg.BoundaryMargin <= tallest+cfg.BoundaryThickness/2 {
		return nil, configErrorf("boundary_margin", "%v must exceed tallest platform height %v plus half the boundary thickness %v",
			cfg.BoundaryMargin, tallest, cfg.BoundaryThickness/2)
	}

	g := &Generator{
		cfg:     cfg,
		catalog: cat,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Catalog returns the generator's prototype catalog.
func (g *Generator) Catalog() catalog.Catalog {
	return g.catalog
}

// Generate builds one complete layout. A start platform whose footprint
// does not exceed MaxOffset on x or z discards the attempt; after
// MaxAttempts discards a *GenerationFailedError is returned.
func (g *Generator) Generate(rng core.RandomSource) (*Result, error) {
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		start := g.catalog.PickPlatform(rng)
		if !g.startIsValid(start) {
			g.logger.Debug("discarding layout",
				"attempt", attempt,
				"start", start.ID,
				"footprint", start.Footprint.String(),
				"max_offset", g.cfg.MaxOffset,
			)
			continue
		}

		res := g.build(rng, start)
		res.Attempts = attempt

		s := res.Summary()
		g.logger.Debug("layout generated",
			"attempts", attempt,
			"platforms", s.Platforms,
			"hazards", s.Hazards,
			"gems", s.Gems,
		)
		return res, nil
	}

	g.logger.Warn("generation failed", "attempts", g.cfg.MaxAttempts)
	return nil, &GenerationFailedError{Attempts: g.cfg.MaxAttempts}
}

// startIsValid checks the start footprint against the maximum offset.
func (g *Generator) startIsValid(p catalog.PlatformPrototype) bool {
	return p.Footprint.X > g.cfg.MaxOffset || p.Footprint.Z > g.cfg.MaxOffset
}

// build lays out the chain from an accepted start prototype.
func (g *Generator) build(rng core.RandomSource, start catalog.PlatformPrototype) *Result {
	res := &Result{}

	res.Platforms = append(res.Platforms, PlacedPlatform{
		Index:     0,
		Prototype: start,
		Position:  g.cfg.StartPosition,
	})

	remaining := rng.IntRange(g.cfg.MinPlatforms, g.cfg.MaxPlatforms) - 1
	for i := 0; i < remaining; i++ {
		prev := res.Platforms[len(res.Platforms)-1]

		// Offsets are measured from the far edge of the previous footprint.
		pos := prev.Position.Add(prev.Prototype.Footprint).Add(g.drawOffset(rng))

		p := PlacedPlatform{
			Index:     len(res.Platforms),
			Prototype: g.catalog.PickPlatform(rng),
			Position:  pos,
		}
		res.Platforms = append(res.Platforms, p)

		d := Decorate(g.cfg, g.catalog, p, rng)
		if d.Hazard != nil {
			res.Hazards = append(res.Hazards, *d.Hazard)
		}
		res.Gems = append(res.Gems, d.Gems...)
	}

	last := res.Last()
	res.Goal = GoalPlacement{
		PlatformIndex: last.Index,
		Prototype:     g.cfg.GoalPrototype,
		Position:      last.Position.Add(core.V(0, g.cfg.GoalHeight, 0)),
		Rotation:      last.Rotation,
	}
	res.Boundary = ComputeBoundary(g.cfg, res.Platforms)
	return res
}

// drawOffset draws the gap to the next platform.
func (g *Generator) drawOffset(rng core.RandomSource) core.Vec3 {
	x := g.signedSpacing(rng)
	z := g.signedSpacing(rng)

	var y float64
	if rng.Chance(g.cfg.VerticalOffsetOdds) {
		y = g.signedSpacing(rng)
	}
	return core.V(x, y, z)
}

// signedSpacing draws a spacing in [MinOffset, MaxOffset], negated with
// probability InversionOdds.
func (g *Generator) signedSpacing(rng core.RandomSource) float64 {
	v := rng.FloatRange(g.cfg.MinOffset, g.cfg.MaxOffset)
	if rng.Chance(g.cfg.InversionOdds) {
		return -v
	}
	return v
}

// Generate validates the inputs and builds one layout from rng.
func Generate(cfg Config, cat catalog.Catalog, rng core.RandomSource, opts ...Option) (*Result, error) {
	g, err := New(cfg, cat, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(rng)
}

// GenerateSeeded is Generate with a fresh RNG seeded by seed.
func GenerateSeeded(cfg Config, cat catalog.Catalog, seed uint64, opts ...Option) (*Result, error) {
	return Generate(cfg, cat, core.NewRNG(seed), opts...)
}
