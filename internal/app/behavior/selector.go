package behavior

import (
	"fmt"
	"log"
	"math/rand"

	"verdant/internal/app/ports"
	"verdant/internal/domain/actor"
	"verdant/internal/domain/world"
)

// policyStepDistance is how far one policy action walks an NPC before the
// next decision window.
const policyStepDistance = 48.0

// Selector drives NPC autonomy. Decisions fire on each NPC's interval
// timer, movement toward the chosen target runs every tick. An external
// policy may be plugged in, any failure from it is logged and replaced
// with the built-in chooser, never propagated.
type Selector struct {
	Policy ports.BehaviorPolicy
	Rng    *rand.Rand
	Logf   func(format string, args ...any)
}

func NewSelector(policy ports.BehaviorPolicy, rng *rand.Rand) *Selector {
	return &Selector{Policy: policy, Rng: rng, Logf: log.Printf}
}

// Update advances one NPC for one tick.
func (s *Selector) Update(npc *actor.NpcState, grid *world.Grid, player *actor.PlayerState, cal *world.Calendar, dt float64) {
	npc.BehaviorTimer += dt
	if npc.BehaviorTimer >= npc.Interval {
		npc.BehaviorTimer = 0
		s.decide(npc, grid, player, cal)
	}

	var walkable actor.WalkableFunc
	if grid != nil {
		walkable = grid.IsWalkable
	}
	npc.MoveTowardTarget(dt, walkable)
}

func (s *Selector) decide(npc *actor.NpcState, grid *world.Grid, player *actor.PlayerState, cal *world.Calendar) {
	if s.Policy == nil {
		s.chooseState(npc)
		return
	}

	action, err := s.selectSafely(buildObservation(npc, grid, player, cal))
	if err != nil {
		s.logf("behavior policy failed for %s: %v, falling back to rule chooser", npc.Name, err)
		s.chooseState(npc)
		return
	}
	s.applyAction(npc, action)
}

// selectSafely calls the policy with panic containment.
func (s *Selector) selectSafely(obs ports.PolicyObservation) (action ports.BehaviorAction, err error) {
	defer func() {
		if r := recover(); r != nil {
			action = ports.BehaviorNone
			err = fmt.Errorf("policy panic: %v", r)
		}
	}()
	return s.Policy.SelectAction(obs)
}

// chooseState is the rule-based chooser: a uniform pick among idle,
// wander, and work. Work keeps the NPC stationary, a product hook with no
// modeled behavior yet.
func (s *Selector) chooseState(npc *actor.NpcState) {
	switch s.Rng.Intn(3) {
	case 0:
		npc.SetIdle()
	case 1:
		npc.SetWanderTarget(s.Rng)
	default:
		npc.SetWork()
	}
}

func (s *Selector) applyAction(npc *actor.NpcState, action ports.BehaviorAction) {
	var dx, dy float64
	switch action {
	case ports.BehaviorUp:
		dy = -1
	case ports.BehaviorDown:
		dy = 1
	case ports.BehaviorLeft:
		dx = -1
	case ports.BehaviorRight:
		dx = 1
	default:
		npc.SetIdle()
		return
	}
	npc.State = actor.BehaviorWander
	npc.Target = &actor.Target{
		X: npc.Body.X + dx*policyStepDistance,
		Y: npc.Body.Y + dy*policyStepDistance,
	}
}

func buildObservation(npc *actor.NpcState, grid *world.Grid, player *actor.PlayerState, cal *world.Calendar) ports.PolicyObservation {
	obs := ports.PolicyObservation{
		NpcX:         npc.Body.X,
		NpcY:         npc.Body.Y,
		NpcState:     string(npc.State),
		NpcDirection: string(npc.Body.Direction),
		Friendship:   npc.Friendship,
		WorldKnown:   grid != nil,
	}
	if player != nil {
		obs.PlayerX = player.Body.X
		obs.PlayerY = player.Body.Y
		obs.PlayerKnown = true
	}
	if cal != nil {
		obs.Hour = cal.Hour()
	}
	return obs
}

func (s *Selector) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}
