package world

import "testing"

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("north"); !ok || d != DirNorth {
		t.Fatalf("parse north: %v %v", d, ok)
	}
	if _, ok := ParseDirection("up"); ok {
		t.Fatal("parsed unknown direction")
	}
}

func TestDelta_CoversAllDirections(t *testing.T) {
	sumX, sumY := 0, 0
	for _, d := range VicinityOrder {
		dx, dy := d.Delta()
		sumX += dx
		sumY += dy
	}
	// The nine offsets are symmetric around the origin.
	if sumX != 0 || sumY != 0 {
		t.Fatalf("offset sums = (%d,%d), want (0,0)", sumX, sumY)
	}
}

func TestMoveAgent_PanicsOnDiagonalDirection(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	a := addTestAgent(t, w, "alice", Point{X: 1, Y: 1})
	w.NewTurn(DefaultTurnBudget)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on diagonal move")
		}
	}()
	w.MoveAgent(a, DirNortheast)
}

func TestAttack_PanicsOnLocalDirection(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	a := addTestAgent(t, w, "alice", Point{X: 1, Y: 1})
	w.NewTurn(DefaultTurnBudget)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on local attack")
		}
	}()
	w.Attack(a, DirLocal)
}
