package session

import (
	"fmt"

	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
)

// Agent tunes the simulated traversal.
type Agent struct {
	FallOdds   float64 // Chance to miss each jump and fall into the boundary
	HazardOdds float64 // Chance to touch each hazard on a visited platform
	MaxHealth  float64
}

// DefaultAgent returns a reasonably careful agent.
func DefaultAgent() Agent {
	return Agent{
		FallOdds:   0.02,
		HazardOdds: 0.25,
		MaxHealth:  DefaultMaxHealth,
	}
}

// Validate checks that both odds lie in [0, 1].
func (a Agent) Validate() error {
	if !(a.FallOdds >= 0 && a.FallOdds <= 1) {
		return fmt.Errorf("session: fall odds must be within [0, 1], got %v", a.FallOdds)
	}
	if !(a.HazardOdds >= 0 && a.HazardOdds <= 1) {
		return fmt.Errorf("session: hazard odds must be within [0, 1], got %v", a.HazardOdds)
	}
	return nil
}

// Outcome summarises a simulated run.
type Outcome struct {
	Won              bool
	Died             bool
	Cause            string // Trigger kind that ended the run, empty on a win
	Score            int
	GemsCollected    int
	PlatformsVisited int
}

// Run walks the chain in order: on each platform the agent collects every
// gem, then may touch each hazard; between platforms it may miss the jump
// and fall into the boundary. Reaching the last platform enters the goal.
// This is a scoring simulation, not a solvability check.
func Run(res *layout.Result, agent Agent, rng core.RandomSource, s layout.Sink) (Outcome, error) {
	if err := agent.Validate(); err != nil {
		return Outcome{}, err
	}

	st := NewStatus(s, agent.MaxHealth)
	ts := BuildTriggers(res)
	var out Outcome

	last := len(res.Platforms) - 1
	for i := 0; i <= last && st.Alive(); i++ {
		out.PlatformsVisited++

		for _, g := range ts.Gems(i) {
			st.Enter(g)
			out.GemsCollected++
		}

		for _, h := range ts.Hazards(i) {
			if rng.Chance(agent.HazardOdds) {
				st.Enter(h)
				out.Cause = h.Kind.String()
				break
			}
		}
		if !st.Alive() {
			break
		}

		if i == ts.Goal.PlatformIndex {
			st.Enter(ts.Goal)
			break
		}

		if rng.Chance(agent.FallOdds) {
			st.Enter(ts.Boundary)
			out.Cause = ts.Boundary.Kind.String()
		}
	}

	out.Won = st.Won()
	out.Died = !st.Alive()
	out.Score = st.Score()
	return out, nil
}
