package behavior

import (
	"math"
	"math/rand"

	"verdant/internal/app/ports"
)

const (
	playerNoticeRange = 100.0

	approachChance = 0.7
	turnChance     = 0.3
)

var moveActions = []ports.BehaviorAction{
	ports.BehaviorUp,
	ports.BehaviorDown,
	ports.BehaviorLeft,
	ports.BehaviorRight,
}

// RulePolicy is the built-in behavior chooser: near the player it mostly
// approaches, otherwise it mostly keeps its heading with an occasional
// random turn. It is also the fallback when an external policy fails.
type RulePolicy struct {
	rng *rand.Rand
}

func NewRulePolicy(rng *rand.Rand) RulePolicy {
	return RulePolicy{rng: rng}
}

func (p RulePolicy) SelectAction(obs ports.PolicyObservation) (ports.BehaviorAction, error) {
	if !obs.WorldKnown {
		return ports.BehaviorNone, nil
	}
	if obs.PlayerKnown {
		dist := math.Hypot(obs.PlayerX-obs.NpcX, obs.PlayerY-obs.NpcY)
		if dist < playerNoticeRange {
			if p.rng.Float64() < approachChance {
				return towardPlayer(obs), nil
			}
			return moveActions[p.rng.Intn(len(moveActions))], nil
		}
	}
	if p.rng.Float64() < turnChance {
		return moveActions[p.rng.Intn(len(moveActions))], nil
	}
	return keepHeading(obs), nil
}

func towardPlayer(obs ports.PolicyObservation) ports.BehaviorAction {
	dx := obs.PlayerX - obs.NpcX
	dy := obs.PlayerY - obs.NpcY
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return ports.BehaviorRight
		}
		return ports.BehaviorLeft
	}
	if dy > 0 {
		return ports.BehaviorDown
	}
	return ports.BehaviorUp
}

func keepHeading(obs ports.PolicyObservation) ports.BehaviorAction {
	switch obs.NpcDirection {
	case "up":
		return ports.BehaviorUp
	case "down":
		return ports.BehaviorDown
	case "left":
		return ports.BehaviorLeft
	case "right":
		return ports.BehaviorRight
	}
	return ports.BehaviorNone
}
