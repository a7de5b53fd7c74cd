package observe

import "verdant/internal/app/game"

type Request struct{}

type Response struct {
	Snapshot game.ViewSnapshot `json:"snapshot"`
	Rules    Rules             `json:"rules"`
}

// Rules exposes the simulation constants a client needs to predict
// outcomes without a round trip.
type Rules struct {
	TileSize            int     `json:"tile_size"`
	MatureStage         float64 `json:"mature_stage"`
	GrowthRatePerSecond float64 `json:"growth_rate_per_second"`
	WaterEnergyCost     float64 `json:"water_energy_cost"`
	HarvestEnergyCost   float64 `json:"harvest_energy_cost"`
	InteractionRange    float64 `json:"interaction_range"`
	DaysPerSeason       int     `json:"days_per_season"`
	BuyMultiplier       float64 `json:"buy_multiplier"`
	SellMultiplier      float64 `json:"sell_multiplier"`
}
