package layout

import (
	"math"

	"github.com/vovakirdan/platformgen/internal/core"
)

// ComputeBoundary derives the death volume for a chain. It sits
// BoundaryMargin below the lowest platform (never above world origin) and
// spans (MaxPlatforms * MaxOffset)^2 on both horizontal axes.
func ComputeBoundary(cfg Config, platforms []PlacedPlatform) BoundaryPlacement {
	lowestY := 0.0
	for _, p := range platforms {
		lowestY = math.Min(lowestY, p.Position.Y)
	}

	side := math.Pow(float64(cfg.MaxPlatforms)*cfg.MaxOffset, 2)
	return BoundaryPlacement{
		Box: core.NewBox(
			core.V(0, lowestY-cfg.BoundaryMargin, 0),
			core.V(side, cfg.BoundaryThickness, side),
		),
	}
}
