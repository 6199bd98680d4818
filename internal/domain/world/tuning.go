package world

const (
	DefaultTurnBudget = 100
	MaxEnergy         = 100

	TrapDamage       = 20
	BaseAttackDamage = 10

	MoveCost   = 10
	AttackCost = 20
	PickCost   = 5
	EatCost    = 5
)
