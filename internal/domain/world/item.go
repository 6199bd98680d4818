package world

import "errors"

type ItemType string

const (
	ItemFood     ItemType = "food"
	ItemGold     ItemType = "gold"
	ItemArtifact ItemType = "artifact"
	ItemResource ItemType = "resource"
	ItemTool     ItemType = "tool"
	ItemWeapon   ItemType = "weapon"
)

// Item is immutable after construction. It is owned by exactly one
// container at a time, either a cell's item list or an agent's inventory,
// and changes hands only through pickup, drop and death handling.
type Item struct {
	Type  ItemType `json:"type"`
	Name  string   `json:"name"`
	Value int      `json:"value"`
}

var ErrInvalidItem = errors.New("invalid item")

func (i Item) Validate() error {
	if i.Name == "" || i.Value < 0 || !KnownItemType(i.Type) {
		return ErrInvalidItem
	}
	return nil
}

func KnownItemType(t ItemType) bool {
	switch t {
	case ItemFood, ItemGold, ItemArtifact, ItemResource, ItemTool, ItemWeapon:
		return true
	}
	return false
}
