package game

import (
	"math/rand"

	"verdant/internal/domain/actor"
	"verdant/internal/domain/economy"
	"verdant/internal/domain/item"
	"verdant/internal/domain/world"
)

// GameState is the single explicit owner of every mutable simulation
// structure. Subsystems receive what they need as arguments, nothing is
// ambient.
type GameState struct {
	Catalog  *item.Catalog
	World    *world.Grid
	Calendar *world.Calendar
	Weather  world.Weather
	Camera   *world.Camera
	Player   *actor.PlayerState
	NPCs     []*actor.NpcState
	Shops    map[string]*economy.Shop
}

// NewDefaultState builds a first-run world: generated map, default
// catalog and store, the player at the farm center, and the standard NPC
// roster.
func NewDefaultState(rng *rand.Rand) *GameState {
	catalog := item.DefaultCatalog()
	grid := world.Generate(world.DefaultGenerateConfig(), rng)

	centerX := float64(grid.Width*world.TileSize) / 2
	centerY := float64(grid.Height*world.TileSize) / 2
	player := actor.NewPlayer("Player", centerX, centerY)

	npcs := []*actor.NpcState{
		actor.NewNpc("Anna", actor.RoleFarmer, centerX-160, centerY),
		actor.NewNpc("Pierre", actor.RoleShopkeeper, centerX+160, centerY-96),
		actor.NewNpc("Sam", actor.RoleMiner, centerX, centerY+160),
		actor.NewNpc("Elliott", actor.RoleFisher, centerX-96, centerY-160),
	}

	store := economy.DefaultGeneralStore(catalog)
	return &GameState{
		Catalog:  catalog,
		World:    grid,
		Calendar: world.NewCalendar(world.CalendarConfig{}),
		Weather:  world.WeatherSunny,
		Camera:   world.NewCamera(800, 600, grid),
		Player:   player,
		NPCs:     npcs,
		Shops:    map[string]*economy.Shop{store.Name: store},
	}
}
