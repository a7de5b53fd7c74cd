package actor

import "math/rand"

type NpcRole string

const (
	RoleFarmer     NpcRole = "farmer"
	RoleShopkeeper NpcRole = "shopkeeper"
	RoleMiner      NpcRole = "miner"
	RoleFisher     NpcRole = "fisher"
)

type DialogueState string

const (
	DialogueIdle    DialogueState = "idle"
	DialogueTalking DialogueState = "talking"
)

type BehaviorState string

const (
	BehaviorIdle   BehaviorState = "idle"
	BehaviorWander BehaviorState = "wander"
	BehaviorWork   BehaviorState = "work"
)

type Target struct {
	X float64
	Y float64
}

// NpcState composes a body with social state and the timing bookkeeping
// the behavior selector drives.
type NpcState struct {
	Name       string
	Role       NpcRole
	Body       MovableBody
	Mood       string
	Friendship int
	Dialogue   DialogueState

	State         BehaviorState
	Target        *Target
	BehaviorTimer float64
	Interval      float64
}

func NewNpc(name string, role NpcRole, x, y float64) *NpcState {
	return &NpcState{
		Name:     name,
		Role:     role,
		Body:     NewBody(x, y, NpcSpeed),
		Mood:     "neutral",
		Dialogue: DialogueIdle,
		State:    BehaviorIdle,
		Interval: BehaviorInterval,
	}
}

func (n *NpcState) SetIdle() {
	n.State = BehaviorIdle
	n.Target = nil
	n.Body.Halt()
}

// SetWanderTarget picks a destination within the wander radius of the
// current position.
func (n *NpcState) SetWanderTarget(rng *rand.Rand) {
	n.State = BehaviorWander
	n.Target = &Target{
		X: n.Body.X + float64(rng.Intn(2*WanderRadius+1)-WanderRadius),
		Y: n.Body.Y + float64(rng.Intn(2*WanderRadius+1)-WanderRadius),
	}
}

// SetWork is a stationary placeholder state. Role-specific work is a
// product hook, not modeled yet.
func (n *NpcState) SetWork() {
	n.State = BehaviorWork
	n.Target = nil
	n.Body.Halt()
}

// MoveTowardTarget steps toward the current target and clears it on
// arrival.
func (n *NpcState) MoveTowardTarget(dt float64, walkable WalkableFunc) {
	if n.Target == nil {
		return
	}
	dx := n.Target.X - n.Body.X
	dy := n.Target.Y - n.Body.Y
	dist := n.Body.DistanceTo(n.Target.X, n.Target.Y)
	if dist < ArrivalEpsilon {
		n.Target = nil
		n.Body.Halt()
		return
	}
	n.Body.Move(dx/dist, dy/dist, dt, walkable)
}

// ReceiveGift raises friendship and returns a response line scaled to the
// new standing.
func (n *NpcState) ReceiveGift() string {
	n.Friendship += GiftFriendship
	if n.Friendship > MaxFriendship {
		n.Friendship = MaxFriendship
	}
	if n.Friendship < 0 {
		n.Friendship = 0
	}
	switch {
	case n.Friendship > 800:
		return "I love this gift! Thank you so much!"
	case n.Friendship > 500:
		return "Thank you, this is a lovely gift."
	case n.Friendship > 200:
		return "Thanks."
	default:
		return "Hmm, okay."
	}
}

var greetings = []string{
	"Hello there!",
	"Nice day, isn't it?",
	"How's the farm coming along?",
	"The weather is lovely today.",
}

// Greet returns a canned greeting and flips dialogue state to talking.
// EndTalk returns it to idle.
func (n *NpcState) Greet(rng *rand.Rand) string {
	n.Dialogue = DialogueTalking
	return greetings[rng.Intn(len(greetings))]
}

func (n *NpcState) EndTalk() {
	n.Dialogue = DialogueIdle
}
