// Package worldfile loads world layout documents: grid dimensions plus
// the terrain, items and starting agents to author into a fresh world.
// Documents are validated against an embedded JSON schema before use.
package worldfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"gridworld/internal/domain/world"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed layout.schema.json
var schemaSource string

var layoutSchema = jsonschema.MustCompileString("layout.schema.json", schemaSource)

type Layout struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Terrain []Terrain `json:"terrain"`
	Items   []Item    `json:"items"`
	Agents  []Agent   `json:"agents"`
}

type Terrain struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

type Item struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Agent struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Health int    `json:"health"`
	Energy int    `json:"energy"`
}

func Load(path string) (Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (Layout, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	if err := layoutSchema.Validate(doc); err != nil {
		return Layout{}, fmt.Errorf("layout schema: %w", err)
	}
	var l Layout
	if err := json.Unmarshal(raw, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	return l, nil
}

// Build constructs a world from the layout using the regular authoring
// operations. Out-of-bounds entries fail the build instead of being
// silently dropped.
func (l Layout) Build(rng *rand.Rand) (*world.World, error) {
	w, err := world.New(world.Config{Width: l.Width, Height: l.Height, Rand: rng})
	if err != nil {
		return nil, err
	}
	for _, t := range l.Terrain {
		var ok bool
		switch t.Kind {
		case "obstacle":
			ok = w.AddObstacle(t.X, t.Y)
		case "trap":
			ok = w.AddTrap(t.X, t.Y)
		case "pit":
			ok = w.AddPit(t.X, t.Y)
		}
		if !ok {
			return nil, fmt.Errorf("layout terrain %s out of bounds at (%d,%d)", t.Kind, t.X, t.Y)
		}
	}
	for _, it := range l.Items {
		item := world.Item{Type: world.ItemType(it.Type), Name: it.Name, Value: it.Value}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("layout item %q: %w", it.Name, err)
		}
		if !w.AddItem(it.X, it.Y, item) {
			return nil, fmt.Errorf("layout item %q out of bounds at (%d,%d)", it.Name, it.X, it.Y)
		}
	}
	for _, a := range l.Agents {
		health, energy := a.Health, a.Energy
		if health == 0 {
			health = 100
		}
		if energy == 0 {
			energy = 100
		}
		agent := world.NewAgent(a.Name, health, energy)
		if !w.AddAgent(agent, world.Point{X: a.X, Y: a.Y}) {
			return nil, fmt.Errorf("layout agent %q rejected at (%d,%d)", a.Name, a.X, a.Y)
		}
	}
	return w, nil
}
