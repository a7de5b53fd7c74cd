package ports

type BehaviorAction string

const (
	BehaviorUp    BehaviorAction = "up"
	BehaviorDown  BehaviorAction = "down"
	BehaviorLeft  BehaviorAction = "left"
	BehaviorRight BehaviorAction = "right"
	BehaviorNone  BehaviorAction = "none"
)

// PolicyObservation is the flattened state vector a behavior policy sees.
// PlayerKnown and WorldKnown are false before full initialization, a
// policy must tolerate that by returning BehaviorNone.
type PolicyObservation struct {
	NpcX         float64
	NpcY         float64
	NpcState     string
	NpcDirection string
	Friendship   int

	PlayerX     float64
	PlayerY     float64
	PlayerKnown bool

	Hour       int
	WorldKnown bool
}

// BehaviorPolicy decides an NPC's next movement action. Failures are
// handled at the selector boundary, a policy error never reaches
// gameplay.
type BehaviorPolicy interface {
	SelectAction(obs PolicyObservation) (BehaviorAction, error)
}
