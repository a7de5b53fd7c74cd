package world

const (
	TileSize = 32

	DefaultWidth  = 40
	DefaultHeight = 30

	MatureStage = 5.0
	GrowthRate  = 0.1

	WaterEnergyCost   = 1.0
	HarvestEnergyCost = 0.5

	DefaultRealSecondsPerDay = 15 * 60
	DaysPerSeason            = 28

	MinTimeScale = 0.1
	MaxTimeScale = 10.0
)
