package layout

import (
	"github.com/vovakirdan/platformgen/internal/catalog"
	"github.com/vovakirdan/platformgen/internal/core"
)

// Decoration is what Decorate emits for one platform.
type Decoration struct {
	Hazard *FeaturePlacement
	Gems   []FeaturePlacement
}

// HazardFits reports whether a footprint is large enough to carry a hazard:
// half its x or z extent must exceed minOffset.
func HazardFits(footprint core.Vec3, minOffset float64) bool {
	return footprint.X/2 > minOffset || footprint.Z/2 > minOffset
}

// Decorate rolls an optional hazard and an optional gem deposit for p.
// It depends only on its arguments and the draws it takes from rng.
func Decorate(cfg Config, cat catalog.Catalog, p PlacedPlatform, rng core.RandomSource) Decoration {
	var d Decoration
	area := p.TopFace()

	if HazardFits(p.Prototype.Footprint, cfg.MinOffset) && rng.Chance(cfg.HazardRisk) {
		d.Hazard = &FeaturePlacement{
			PlatformIndex: p.Index,
			Prototype:     cat.PickHazard(rng),
			Position:      core.RandomPointInBox(rng, area),
		}
	}

	if cfg.MaxGemsPerPlatform > 0 && rng.Chance(cfg.GemOdds) {
		count := rng.IntRange(1, cfg.MaxGemsPerPlatform)
		d.Gems = make([]FeaturePlacement, 0, count)
		for i := 0; i < count; i++ {
			d.Gems = append(d.Gems, FeaturePlacement{
				PlatformIndex: p.Index,
				Prototype:     cat.PickGem(rng),
				Position:      core.RandomPointInBox(rng, area),
			})
		}
	}

	return d
}
