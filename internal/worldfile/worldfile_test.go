package worldfile

import (
	"math/rand"
	"strings"
	"testing"

	"gridworld/internal/domain/world"
)

const demoLayout = `{
  "width": 5,
  "height": 5,
  "terrain": [
    {"x": 2, "y": 2, "kind": "obstacle"},
    {"x": 1, "y": 1, "kind": "trap"},
    {"x": 3, "y": 3, "kind": "pit"}
  ],
  "items": [
    {"x": 0, "y": 0, "type": "weapon", "name": "Sword", "value": 5},
    {"x": 1, "y": 0, "type": "food", "name": "Apple", "value": 20}
  ],
  "agents": [
    {"name": "Alice", "x": 0, "y": 0},
    {"name": "Bob", "x": 4, "y": 4, "health": 80, "energy": 90}
  ]
}`

func TestParse_AcceptsValidLayout(t *testing.T) {
	l, err := Parse([]byte(demoLayout))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if l.Width != 5 || l.Height != 5 || len(l.Terrain) != 3 || len(l.Items) != 2 || len(l.Agents) != 2 {
		t.Fatalf("layout = %+v", l)
	}
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing dimensions", `{"terrain": []}`},
		{"zero width", `{"width": 0, "height": 5}`},
		{"unknown terrain kind", `{"width": 5, "height": 5, "terrain": [{"x": 0, "y": 0, "kind": "lava"}]}`},
		{"unknown item type", `{"width": 5, "height": 5, "items": [{"x": 0, "y": 0, "type": "potion", "name": "Elixir"}]}`},
		{"negative coordinate", `{"width": 5, "height": 5, "agents": [{"name": "a", "x": -1, "y": 0}]}`},
		{"extra field", `{"width": 5, "height": 5, "biome": "forest"}`},
		{"not json", `width: 5`},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.doc)); err == nil {
			t.Fatalf("%s: accepted", tc.name)
		}
	}
}

func TestBuild_AuthorsWorldFromLayout(t *testing.T) {
	l, err := Parse([]byte(demoLayout))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w, err := l.Build(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if w.Width() != 5 || w.Height() != 5 {
		t.Fatalf("dimensions = %dx%d", w.Width(), w.Height())
	}

	alice, ok := w.Agent("Alice")
	if !ok || alice.Position != (world.Point{X: 0, Y: 0}) || alice.Health != 100 {
		t.Fatalf("alice = %+v", alice)
	}
	bob, ok := w.Agent("Bob")
	if !ok || bob.Health != 80 || bob.Energy != 90 {
		t.Fatalf("bob = %+v", bob)
	}

	v := w.InspectVicinity(alice)
	if got := v.At(world.DirLocal).Items; len(got) != 1 || got[0] != "Sword" {
		t.Fatalf("items at origin = %v", got)
	}
	if got := v.At(world.DirNortheast).Terrain; len(got) != 1 || got[0] != "trap" {
		t.Fatalf("terrain at (1,1) = %v", got)
	}
}

func TestBuild_RejectsOutOfBoundsEntries(t *testing.T) {
	l := Layout{
		Width:  2,
		Height: 2,
		Items:  []Item{{X: 5, Y: 5, Type: "gold", Name: "Coin", Value: 1}},
	}
	if _, err := l.Build(nil); err == nil || !strings.Contains(err.Error(), "out of bounds") {
		t.Fatalf("expected out-of-bounds error, got %v", err)
	}
}

func TestBuild_RejectsDuplicateAgentNames(t *testing.T) {
	l := Layout{
		Width:  2,
		Height: 2,
		Agents: []Agent{{Name: "Alice", X: 0, Y: 0}, {Name: "Alice", X: 1, Y: 1}},
	}
	if _, err := l.Build(nil); err == nil {
		t.Fatal("duplicate agent names accepted")
	}
}
