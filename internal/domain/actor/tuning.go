package actor

const (
	PlayerSpeed = 150.0
	NpcSpeed    = 100.0

	DefaultMaxEnergy = 100.0
	StartingMoney    = 500

	MoveEnergyPerSecond = 0.05
	InteractionRange    = 50.0

	BehaviorInterval = 1.0
	WanderRadius     = 100
	ArrivalEpsilon   = 5.0

	XPPerLevel    = 100.0
	MaxSkillLevel = 10

	GiftFriendship = 10
	MaxFriendship  = 1000
)
