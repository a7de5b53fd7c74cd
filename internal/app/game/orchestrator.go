package game

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"verdant/internal/app/behavior"
	"verdant/internal/app/ports"
	"verdant/internal/domain/actor"
	"verdant/internal/domain/world"
)

const (
	harvestXP = 10.0
	clearXP   = 5.0
)

// Orchestrator owns the per-tick update sequence and routes player
// intents. The simulation is a single logical writer, the mutex only
// serializes HTTP snapshot reads against the tick loop.
type Orchestrator struct {
	mu sync.Mutex

	State    *GameState
	Selector *behavior.Selector
	Rng      *rand.Rand
	Metrics  ports.IntentMetrics
	Logf     func(format string, args ...any)

	// day-boundary persistence, all optional
	Tx           ports.TxManager
	MapRepo      ports.MapRepository
	ShopRepo     ports.ShopRepository
	CalendarRepo ports.CalendarRepository

	registry map[IntentType]intentHandler

	// buffered movement input, applied each tick until replaced
	moveX float64
	moveY float64
}

func NewOrchestrator(state *GameState, selector *behavior.Selector, rng *rand.Rand, metrics ports.IntentMetrics) *Orchestrator {
	return &Orchestrator{
		State:    state,
		Selector: selector,
		Rng:      rng,
		Metrics:  metrics,
		Logf:     log.Printf,
		registry: intentRegistry(),
	}
}

// Update runs one simulation step. The phase order is fixed: time, world,
// player, NPCs.
func (o *Orchestrator) Update(dt float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := o.State
	ev := st.Calendar.Advance(dt)
	if st.Calendar.Paused() {
		return
	}
	if ev.NewDay {
		o.startDay(ev)
	}

	if st.Camera != nil {
		st.Camera.Follow(st.Player.Body.X, st.Player.Body.Y)
	}
	st.World.Update(dt)

	st.Player.Move(o.moveX, o.moveY, dt, st.World.IsWalkable)
	st.Player.TickBuffs(dt * st.Calendar.MinutesPerRealSecond())

	for _, npc := range st.NPCs {
		o.Selector.Update(npc, st.World, st.Player, st.Calendar, dt)
	}
}

// startDay handles every day boundary crossed by the last advance:
// weather reroll, crop rollover, rain, restocking, then one persisted
// snapshot.
func (o *Orchestrator) startDay(ev world.DayEvents) {
	st := o.State
	for i := 0; i < ev.Days; i++ {
		st.World.StartDay()
	}
	st.Weather = world.RollWeather(o.Rng)
	if st.Weather == world.WeatherRainy {
		st.World.WaterAll()
	}
	for _, shop := range st.Shops {
		shop.Restock()
	}
	o.persistDay()
}

// persistDay saves map, shops, and calendar in one transaction. Failures
// are logged, never fatal: the simulation keeps running on the in-memory
// state.
func (o *Orchestrator) persistDay() {
	if o.Tx == nil {
		return
	}
	ctx := context.Background()
	err := o.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if o.MapRepo != nil {
			if err := o.MapRepo.Save(ctx, o.State.World.State()); err != nil {
				return err
			}
		}
		if o.ShopRepo != nil {
			for _, shop := range o.State.Shops {
				if err := o.ShopRepo.Save(ctx, shop.State()); err != nil {
					return err
				}
			}
		}
		if o.CalendarRepo != nil {
			if err := o.CalendarRepo.Save(ctx, o.State.Calendar.State()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		o.logf("day snapshot save failed: %v", err)
	}
}

// HandleIntent dispatches one player intent synchronously against the
// current state.
func (o *Orchestrator) HandleIntent(in Intent) Result {
	o.mu.Lock()
	defer o.mu.Unlock()

	handler, ok := o.registry[in.Type]
	if !ok {
		o.recordRejected(string(in.Type))
		return rejected("unsupported_intent")
	}
	res := handler(o, in)
	if res.OK {
		o.recordAccepted(string(in.Type))
	} else {
		o.recordRejected(string(in.Type))
	}
	return res
}

// targetPos resolves an intent's target, defaulting to one tile in front
// of the player.
func (o *Orchestrator) targetPos(in Intent) (float64, float64) {
	if in.X != 0 || in.Y != 0 {
		return in.X, in.Y
	}
	body := o.State.Player.Body
	switch body.Direction {
	case actor.DirUp:
		return body.X, body.Y - world.TileSize
	case actor.DirLeft:
		return body.X - world.TileSize, body.Y
	case actor.DirRight:
		return body.X + world.TileSize, body.Y
	default:
		return body.X, body.Y + world.TileSize
	}
}

func (o *Orchestrator) nearestNpc() *actor.NpcState {
	var best *actor.NpcState
	bestDist := actor.InteractionRange
	p := o.State.Player.Body
	for _, npc := range o.State.NPCs {
		d := npc.Body.DistanceTo(p.X, p.Y)
		if d <= bestDist {
			best = npc
			bestDist = d
		}
	}
	return best
}

// clearObject removes the object in front of the player with the matching
// tool and yields its material.
func (o *Orchestrator) clearObject(toolID string, energyCost, wx, wy float64) Result {
	st := o.State
	tx, ty := st.World.TileIndex(wx, wy)
	obj, ok := st.World.ObjectAt(tx, ty)
	if !ok {
		return rejected("nothing_to_clear")
	}
	if obj.Kind.ClearTool() != toolID {
		return rejected("wrong_tool")
	}
	if !st.Player.SpendEnergy(energyCost) {
		return rejected("not_enough_energy")
	}
	st.World.RemoveObject(tx, ty)
	if def, ok := st.Catalog.Get(obj.Kind.YieldItem()); ok {
		st.Player.Inventory.Add(def, "", 1)
	}
	switch toolID {
	case "pickaxe":
		st.Player.AddSkillXP(actor.SkillMining, clearXP)
	default:
		st.Player.AddSkillXP(actor.SkillForaging, clearXP)
	}
	return accepted()
}

// farmHand adapts the player to the world's harvest interface, resolving
// yield items through the catalog.
type farmHand struct {
	o *Orchestrator
}

func (f farmHand) SpendEnergy(cost float64) bool {
	return f.o.State.Player.SpendEnergy(cost)
}

func (f farmHand) GainItem(itemID string) {
	def, ok := f.o.State.Catalog.Get(itemID)
	if !ok {
		return
	}
	f.o.State.Player.Inventory.Add(def, "", 1)
}

func (o *Orchestrator) recordAccepted(intentType string) {
	if o.Metrics != nil {
		o.Metrics.RecordAccepted(intentType)
	}
}

func (o *Orchestrator) recordRejected(intentType string) {
	if o.Metrics != nil {
		o.Metrics.RecordRejected(intentType)
	}
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}
