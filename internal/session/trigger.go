package session

import (
	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
)

// TriggerKind classifies what entering a trigger does.
type TriggerKind int

const (
	TriggerGem      TriggerKind = iota // Awards Value once
	TriggerHazard                      // Kills
	TriggerBoundary                    // Kills
	TriggerGoal                        // Wins once
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerGem:
		return "gem"
	case TriggerHazard:
		return "hazard"
	case TriggerBoundary:
		return "boundary"
	case TriggerGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Trigger is one reactive volume in a layout.
type Trigger struct {
	Kind          TriggerKind
	PlatformIndex int // -1 for the boundary
	Prototype     string
	Position      core.Vec3
	Value         int
	consumed      bool
}

// Consumed reports whether a one-shot trigger has already fired.
func (t *Trigger) Consumed() bool {
	return t.consumed
}

// Triggers indexes the triggers of a layout by platform.
type Triggers struct {
	Boundary *Trigger
	Goal     *Trigger
	gems     map[int][]*Trigger
	hazards  map[int][]*Trigger
}

// BuildTriggers derives the trigger set for res.
func BuildTriggers(res *layout.Result) *Triggers {
	ts := &Triggers{
		gems:    make(map[int][]*Trigger),
		hazards: make(map[int][]*Trigger),
		Boundary: &Trigger{
			Kind:          TriggerBoundary,
			PlatformIndex: -1,
			Prototype:     layout.BoundaryPrototype,
			Position:      res.Boundary.Box.Center,
		},
		Goal: &Trigger{
			Kind:          TriggerGoal,
			PlatformIndex: res.Goal.PlatformIndex,
			Prototype:     res.Goal.Prototype,
			Position:      res.Goal.Position,
		},
	}
	for _, g := range res.Gems {
		ts.gems[g.PlatformIndex] = append(ts.gems[g.PlatformIndex], &Trigger{
			Kind:          TriggerGem,
			PlatformIndex: g.PlatformIndex,
			Prototype:     g.Prototype.ID,
			Position:      g.Position,
			Value:         g.Prototype.Value,
		})
	}
	for _, h := range res.Hazards {
		ts.hazards[h.PlatformIndex] = append(ts.hazards[h.PlatformIndex], &Trigger{
			Kind:          TriggerHazard,
			PlatformIndex: h.PlatformIndex,
			Prototype:     h.Prototype.ID,
			Position:      h.Position,
		})
	}
	return ts
}

// Gems returns the gem triggers on platform index.
func (ts *Triggers) Gems(index int) []*Trigger {
	return ts.gems[index]
}

// Hazards returns the hazard triggers on platform index.
func (ts *Triggers) Hazards(index int) []*Trigger {
	return ts.hazards[index]
}

// Enter applies the reaction of t to st. Dead agents trigger nothing.
func (st *Status) Enter(t *Trigger) {
	if !st.Alive() {
		return
	}
	switch t.Kind {
	case TriggerGem:
		if t.consumed {
			return
		}
		t.consumed = true
		st.AddScore(t.Value)
	case TriggerHazard, TriggerBoundary:
		st.Kill()
	case TriggerGoal:
		if t.consumed {
			return
		}
		t.consumed = true
		st.won = true
	}
}
