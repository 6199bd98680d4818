package world

// Cell is the per-coordinate state of the grid. Cells are created once at
// world construction and never destroyed. Mutation happens only inside a
// World operation while the world guard is held.
type Cell struct {
	Obstacle  bool
	Trap      bool
	Pit       bool
	Items     []Item
	Occupants []*Agent
}

// Passable reports whether an agent may enter the cell. Traps do not block
// entry; they fire on it.
func (c *Cell) Passable() bool {
	return !c.Obstacle && !c.Pit
}

func (c *Cell) TerrainFlags() []string {
	flags := []string{}
	if c.Obstacle {
		flags = append(flags, "obstacle")
	}
	if c.Pit {
		flags = append(flags, "pit")
	}
	if c.Trap {
		flags = append(flags, "trap")
	}
	return flags
}

func (c *Cell) removeOccupant(a *Agent) {
	for i, occ := range c.Occupants {
		if occ == a {
			c.Occupants = append(c.Occupants[:i], c.Occupants[i+1:]...)
			return
		}
	}
}
