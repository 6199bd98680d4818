package world

import "encoding/json"

// CellReport is what an agent learns about a single cell in its vicinity.
// Out-of-bounds offsets yield an empty report.
type CellReport struct {
	Agents  []string `json:"agents"`
	Items   []string `json:"items"`
	Terrain []string `json:"terrain"`
}

// Vicinity covers the agent's own cell plus all eight neighbors, indexed
// by VicinityOrder. The fixed size guarantees every direction is present
// in every report.
type Vicinity [9]CellReport

func (v Vicinity) At(d Direction) CellReport {
	return v[d.VicinityIndex()]
}

func (v Vicinity) MarshalJSON() ([]byte, error) {
	out := make(map[Direction]CellReport, len(VicinityOrder))
	for i, d := range VicinityOrder {
		out[d] = v[i]
	}
	return json.Marshal(out)
}

// AgentReport is a point-in-time copy of an agent's observable state.
type AgentReport struct {
	Name         string      `json:"name"`
	Position     Point       `json:"position"`
	Health       int         `json:"health"`
	Energy       int         `json:"energy"`
	Inventory    []string    `json:"inventory"`
	ActionPoints int         `json:"action_points"`
	Status       AgentStatus `json:"status"`
}

// CellSummary is the render-facing digest of one cell.
type CellSummary struct {
	Obstacle  bool `json:"obstacle"`
	Trap      bool `json:"trap"`
	Pit       bool `json:"pit"`
	Items     int  `json:"items"`
	Occupants int  `json:"occupants"`
}

// Snapshot is a fully-consistent copy of the world taken under the guard,
// for read-only consumers such as the map renderer.
type Snapshot struct {
	Turn   int             `json:"turn"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Cells  [][]CellSummary `json:"cells"`
	Agents []AgentReport   `json:"agents"`
}
