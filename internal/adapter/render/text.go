// Package render draws plain-text views of world snapshots for humans.
// It is a read-only consumer; everything it needs comes from a Snapshot
// taken under the world guard.
package render

import (
	"fmt"
	"strings"

	"gridworld/internal/domain/world"
)

// TextMap renders the grid north-at-top with a compact glyph per cell:
// A# agents, O obstacle, P pit, T trap, I# items.
func TextMap(s world.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== WORLD STATE (Turn %d) ===\n", s.Turn)
	fmt.Fprintf(&b, "Dimensions: %dx%d\n\n", s.Width, s.Height)

	b.WriteString("     ")
	for x := 0; x < s.Width; x++ {
		fmt.Fprintf(&b, "%-5d", x)
	}
	b.WriteString("\n")

	for y := s.Height - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%2d ", y)
		for x := 0; x < s.Width; x++ {
			fmt.Fprintf(&b, "[%-3s]", cellGlyph(s.Cells[x][y]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nAgents:\n")
	if len(s.Agents) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, a := range s.Agents {
		fmt.Fprintf(&b, "  %s hp:%d en:%d atp:%d @ (%d,%d) %s\n",
			a.Name, a.Health, a.Energy, a.ActionPoints, a.Position.X, a.Position.Y, a.Status)
	}
	return b.String()
}

func cellGlyph(c world.CellSummary) string {
	parts := []string{}
	if c.Occupants > 0 {
		parts = append(parts, fmt.Sprintf("A%d", c.Occupants))
	}
	switch {
	case c.Pit:
		parts = append(parts, "P")
	case c.Obstacle:
		parts = append(parts, "O")
	case c.Trap:
		parts = append(parts, "T")
	}
	if c.Items > 0 {
		parts = append(parts, fmt.Sprintf("I%d", c.Items))
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ",")
}
