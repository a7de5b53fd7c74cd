package world

import (
	"math"
	"math/rand"
)

type GenerateConfig struct {
	Width       int
	Height      int
	ObjectRolls int
}

func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ObjectRolls: 50,
	}
}

var generatedObjectKinds = []ObjectKind{ObjectTree, ObjectRock, ObjectBush, ObjectStump}

// Generate procedurally builds a farm map: a dirt-heavy disc around the
// center, grass-heavy terrain outside it, and scattered obstacles kept off
// the farm. All randomness flows through the caller's source.
func Generate(cfg GenerateConfig, rng *rand.Rand) *Grid {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg = DefaultGenerateConfig()
	}
	g := NewGrid(cfg.Width, cfg.Height)

	centerX := float64(cfg.Width) / 2
	centerY := float64(cfg.Height) / 2
	farmRadius := math.Min(float64(cfg.Width), float64(cfg.Height)) / 3

	for ty := 0; ty < cfg.Height; ty++ {
		for tx := 0; tx < cfg.Width; tx++ {
			dist := math.Hypot(float64(tx)-centerX, float64(ty)-centerY)
			terrain := TerrainGrass
			if dist < farmRadius {
				if rng.Float64() < 0.8 {
					terrain = TerrainDirt
				}
			} else {
				if rng.Float64() >= 0.8 {
					terrain = TerrainDirt
				}
			}
			g.SetTerrain(tx, ty, terrain)
		}
	}

	for i := 0; i < cfg.ObjectRolls; i++ {
		tx := rng.Intn(cfg.Width)
		ty := rng.Intn(cfg.Height)
		dist := math.Hypot(float64(tx)-centerX, float64(ty)-centerY)
		if dist <= farmRadius {
			continue
		}
		kind := generatedObjectKinds[rng.Intn(len(generatedObjectKinds))]
		g.PlaceObject(kind, tx, ty)
	}

	return g
}
