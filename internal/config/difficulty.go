package config

import (
	"fmt"

	"github.com/vovakirdan/platformgen/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty parses a preset name. An empty name is normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyDifficulty adjusts the level's odds for a preset. Normal leaves the
// level untouched.
func ApplyDifficulty(l *Level, preset DifficultyPreset) {
	g := &l.Generation
	switch preset {
	case DifficultyEasy:
		g.HazardRisk = core.ClampF(g.HazardRisk*0.5, 0, 1)
		g.GemOdds = core.ClampF(g.GemOdds+0.2, 0, 1)
		g.VerticalOffsetOdds = core.ClampF(g.VerticalOffsetOdds*0.5, 0, 1)
		l.Agent.FallOdds = core.ClampF(l.Agent.FallOdds*0.5, 0, 1)
	case DifficultyHard:
		g.HazardRisk = core.ClampF(g.HazardRisk*2, 0, 1)
		g.GemOdds = core.ClampF(g.GemOdds-0.2, 0, 1)
		g.VerticalOffsetOdds = core.ClampF(g.VerticalOffsetOdds+0.25, 0, 1)
		l.Agent.FallOdds = core.ClampF(l.Agent.FallOdds*2, 0, 1)
		l.Agent.HazardOdds = core.ClampF(l.Agent.HazardOdds*1.5, 0, 1)
	}
}
