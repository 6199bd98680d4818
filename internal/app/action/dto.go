package action

import "gridworld/internal/domain/world"

type IntentType string

const (
	IntentMove   IntentType = "move"
	IntentAttack IntentType = "attack"
	IntentPick   IntentType = "pick_item"
	IntentEat    IntentType = "eat_food"
)

type Intent struct {
	Type      IntentType `json:"type"`
	Direction string     `json:"direction,omitempty"`
	ItemIndex int        `json:"item_index,omitempty"`
}

type Request struct {
	AgentName string
	Intent    Intent
}

type Response struct {
	OK bool `json:"ok"`
	// State is the acting agent's post-action snapshot; nil when the
	// agent is no longer registered (death or unknown name).
	State *world.AgentReport `json:"state,omitempty"`
}
