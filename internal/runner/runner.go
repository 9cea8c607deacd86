// Package runner wires a level through generation, placement and a
// simulated traversal. It is the one place the CLI, the inspector and the
// SSH server share for "play a seed".
package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformgen/internal/config"
	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
	"github.com/vovakirdan/platformgen/internal/session"
	"github.com/vovakirdan/platformgen/internal/sink"
	"github.com/vovakirdan/platformgen/internal/storage"
)

// Report is everything produced by one play.
type Report struct {
	Preset   string
	Seed     uint64
	Result   *layout.Result
	Applied  *layout.Applied
	Outcome  session.Outcome
	Recorder *sink.Recorder
}

// Record converts the report into a run history row.
func (r *Report) Record() storage.RunRecord {
	s := r.Result.Summary()
	return storage.RunRecord{
		Preset:        r.Preset,
		Seed:          r.Seed,
		Platforms:     s.Platforms,
		Hazards:       s.Hazards,
		Gems:          s.Gems,
		GemsCollected: r.Outcome.GemsCollected,
		Won:           r.Outcome.Won,
		Cause:         r.Outcome.Cause,
		Score:         r.Outcome.Score,
		Attempts:      s.Attempts,
	}
}

// Runner plays seeds of a single level.
type Runner struct {
	level  config.Level
	gen    *layout.Generator
	agent  session.Agent
	logger *log.Logger
}

// New validates the level and prepares a runner. A nil logger discards.
func New(level config.Level, logger *log.Logger) (*Runner, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gen, err := level.Generator(layout.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	agent := level.ToAgent()
	if err := agent.Validate(); err != nil {
		return nil, fmt.Errorf("runner: level %s: %w", level.ID, err)
	}
	return &Runner{level: level, gen: gen, agent: agent, logger: logger}, nil
}

// Level returns the level being played.
func (r *Runner) Level() config.Level {
	return r.level
}

// Generate produces the layout for a seed without placing it.
func (r *Runner) Generate(seed uint64) (*layout.Result, error) {
	return r.gen.Generate(core.NewRNG(seed))
}

// Play generates the layout for seed, places it into a fresh recorder and
// walks it with the level's agent. The traversal continues drawing from
// the generation stream, so a seed fully determines the report.
func (r *Runner) Play(seed uint64) (*Report, error) {
	rng := core.NewRNG(seed)
	res, err := r.gen.Generate(rng)
	if err != nil {
		return nil, err
	}

	rec := sink.NewRecorder()
	logged := sink.NewLogged(rec, r.logger)

	applied, err := layout.Apply(res, logged)
	if err != nil {
		return nil, err
	}

	out, err := session.Run(res, r.agent, rng, logged)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("run finished",
		"level", r.level.ID,
		"seed", seed,
		"won", out.Won,
		"cause", out.Cause,
		"score", out.Score,
	)

	return &Report{
		Preset:   r.level.ID,
		Seed:     seed,
		Result:   res,
		Applied:  applied,
		Outcome:  out,
		Recorder: rec,
	}, nil
}
