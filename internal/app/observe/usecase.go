package observe

import (
	"context"
	"errors"

	"verdant/internal/app/game"
	"verdant/internal/domain/actor"
	"verdant/internal/domain/economy"
	"verdant/internal/domain/world"
)

var ErrNotReady = errors.New("game not ready")

// Viewer is the slice of the orchestrator this usecase needs.
type Viewer interface {
	View() game.ViewSnapshot
}

type UseCase struct {
	Game Viewer
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Game == nil {
		return Response{}, ErrNotReady
	}
	return Response{
		Snapshot: u.Game.View(),
		Rules:    defaultRules(),
	}, nil
}

func defaultRules() Rules {
	return Rules{
		TileSize:            world.TileSize,
		MatureStage:         world.MatureStage,
		GrowthRatePerSecond: world.GrowthRate,
		WaterEnergyCost:     world.WaterEnergyCost,
		HarvestEnergyCost:   world.HarvestEnergyCost,
		InteractionRange:    actor.InteractionRange,
		DaysPerSeason:       world.DaysPerSeason,
		BuyMultiplier:       economy.DefaultBuyMultiplier,
		SellMultiplier:      economy.DefaultSellMultiplier,
	}
}
