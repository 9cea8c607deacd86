package layout

import (
	"fmt"

	"github.com/vovakirdan/platformgen/internal/core"
)

// Handle identifies an instance placed by a Sink.
type Handle string

// Sink is the side-effecting collaborator a layout is applied to.
type Sink interface {
	// PlaceInstance places prototypeID at position and returns a stable
	// handle usable as a parent.
	PlaceInstance(prototypeID string, position, rotation core.Vec3) (Handle, error)
	// AttachChild makes child move with parent.
	AttachChild(parent, child Handle) error
	// ReportDeath signals that the agent died.
	ReportDeath()
	// ReportScoreDelta awards (or removes) score.
	ReportScoreDelta(amount int)
}

// TriggerSink is implemented by sinks that can place sized trigger
// volumes. Apply uses it for the boundary when available.
type TriggerSink interface {
	PlaceTrigger(prototypeID string, box core.Box) (Handle, error)
}

// Applied holds the handles a Sink returned for each placement.
type Applied struct {
	Platforms []Handle
	Hazards   []Handle
	Gems      []Handle
	Goal      Handle
	Boundary  Handle
}

// Apply issues placement commands for every part of res, in chain order:
// platforms, the goal (attached to the final platform), hazards, gems and
// the boundary. The first sink failure stops the apply and is returned
// wrapped in ErrSink; res is never modified.
func Apply(res *Result, s Sink) (*Applied, error) {
	out := &Applied{
		Platforms: make([]Handle, 0, len(res.Platforms)),
		Hazards:   make([]Handle, 0, len(res.Hazards)),
		Gems:      make([]Handle, 0, len(res.Gems)),
	}

	for _, p := range res.Platforms {
		h, err := s.PlaceInstance(p.Prototype.ID, p.Position, p.Rotation)
		if err != nil {
			return out, sinkErr("place platform", p.Index, err)
		}
		out.Platforms = append(out.Platforms, h)
	}

	goal, err := s.PlaceInstance(res.Goal.Prototype, res.Goal.Position, res.Goal.Rotation)
	if err != nil {
		return out, sinkErr("place goal", res.Goal.PlatformIndex, err)
	}
	out.Goal = goal
	if err := s.AttachChild(out.Platforms[res.Goal.PlatformIndex], goal); err != nil {
		return out, sinkErr("attach goal", res.Goal.PlatformIndex, err)
	}

	for _, hz := range res.Hazards {
		h, err := s.PlaceInstance(hz.Prototype.ID, hz.Position, core.Vec3{})
		if err != nil {
			return out, sinkErr("place hazard", hz.PlatformIndex, err)
		}
		out.Hazards = append(out.Hazards, h)
	}

	for _, gem := range res.Gems {
		h, err := s.PlaceInstance(gem.Prototype.ID, gem.Position, core.Vec3{})
		if err != nil {
			return out, sinkErr("place gem", gem.PlatformIndex, err)
		}
		out.Gems = append(out.Gems, h)
	}

	var b Handle
	if ts, ok := s.(TriggerSink); ok {
		b, err = ts.PlaceTrigger(BoundaryPrototype, res.Boundary.Box)
	} else {
		b, err = s.PlaceInstance(BoundaryPrototype, res.Boundary.Box.Center, core.Vec3{})
	}
	if err != nil {
		return out, sinkErr("place boundary", -1, err)
	}
	out.Boundary = b

	return out, nil
}

func sinkErr(op string, index int, err error) error {
	if index < 0 {
		return fmt.Errorf("%w: %s: %w", ErrSink, op, err)
	}
	return fmt.Errorf("%w: %s on platform %d: %w", ErrSink, op, index, err)
}
