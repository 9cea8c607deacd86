package layout

import (
	"github.com/vovakirdan/platformgen/internal/catalog"
	"github.com/vovakirdan/platformgen/internal/core"
)

// PlacedPlatform is one link in the chain.
type PlacedPlatform struct {
	Index     int
	Prototype catalog.PlatformPrototype
	Position  core.Vec3
	Rotation  core.Vec3 // Euler angles in degrees
}

// Bottom returns the y coordinate of the platform's lowest face.
func (p PlacedPlatform) Bottom() float64 {
	return p.Position.Y - p.Prototype.Footprint.Y
}

// TopFace returns the box decorations are scattered in: centered on the
// top face, with the footprint's horizontal extents and no height.
func (p PlacedPlatform) TopFace() core.Box {
	fp := p.Prototype.Footprint
	return core.NewBox(
		p.Position.Add(core.V(0, fp.Y, 0)),
		core.V(fp.X, 0, fp.Z),
	)
}

// FeaturePlacement is a hazard or gem sitting on a platform.
type FeaturePlacement struct {
	PlatformIndex int
	Prototype     catalog.FeaturePrototype
	Position      core.Vec3
}

// GoalPlacement is the goal marker, attached to the final platform.
type GoalPlacement struct {
	PlatformIndex int
	Prototype     string
	Position      core.Vec3
	Rotation      core.Vec3
}

// BoundaryPlacement is the trigger-only volume that catches a falling agent.
type BoundaryPlacement struct {
	Box core.Box
}

// Result is a complete generated layout. It is only ever returned whole.
type Result struct {
	Platforms []PlacedPlatform // Chain order: first is start, last bears the goal
	Hazards   []FeaturePlacement
	Gems      []FeaturePlacement
	Goal      GoalPlacement
	Boundary  BoundaryPlacement
	Attempts  int // Generation attempts used, including the successful one
}

// Summary condenses a result into counts.
type Summary struct {
	Platforms int
	Hazards   int
	Gems      int
	GemValue  int
	Attempts  int
	LowestY   float64
	HighestY  float64
}

// Summary returns aggregate counts over the result.
func (r *Result) Summary() Summary {
	s := Summary{
		Platforms: len(r.Platforms),
		Hazards:   len(r.Hazards),
		Gems:      len(r.Gems),
		Attempts:  r.Attempts,
	}
	for _, g := range r.Gems {
		s.GemValue += g.Prototype.Value
	}
	for i, p := range r.Platforms {
		if i == 0 || p.Position.Y < s.LowestY {
			s.LowestY = p.Position.Y
		}
		if i == 0 || p.Position.Y > s.HighestY {
			s.HighestY = p.Position.Y
		}
	}
	return s
}

// Start returns the first platform in the chain.
func (r *Result) Start() PlacedPlatform {
	return r.Platforms[0]
}

// Last returns the platform bearing the goal.
func (r *Result) Last() PlacedPlatform {
	return r.Platforms[len(r.Platforms)-1]
}

// Offset returns the gap drawn between platform i-1 and platform i,
// measured from the edge of platform i-1's footprint. i must be >= 1.
func (r *Result) Offset(i int) core.Vec3 {
	prev := r.Platforms[i-1]
	return r.Platforms[i].Position.Sub(prev.Position.Add(prev.Prototype.Footprint))
}

// HazardsOn returns the hazards placed on platform index.
func (r *Result) HazardsOn(index int) []FeaturePlacement {
	return featuresOn(r.Hazards, index)
}

// GemsOn returns the gems placed on platform index.
func (r *Result) GemsOn(index int) []FeaturePlacement {
	return featuresOn(r.Gems, index)
}

func featuresOn(features []FeaturePlacement, index int) []FeaturePlacement {
	var out []FeaturePlacement
	for _, f := range features {
		if f.PlatformIndex == index {
			out = append(out, f)
		}
	}
	return out
}
