package authoring

import (
	"context"
	"errors"
	"testing"

	"gridworld/internal/domain/world"
)

func newAuthoringUC(t *testing.T) UseCase {
	t.Helper()
	w, err := world.New(world.Config{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return UseCase{World: w}
}

func TestPlaceItem(t *testing.T) {
	uc := newAuthoringUC(t)
	resp, err := uc.PlaceItem(context.Background(), ItemRequest{
		X: 1, Y: 1, Item: world.Item{Type: world.ItemFood, Name: "Apple", Value: 20},
	})
	if err != nil || !resp.OK {
		t.Fatalf("place: resp %+v err %v", resp, err)
	}

	// Out of bounds is a domain failure, not an error.
	resp, err = uc.PlaceItem(context.Background(), ItemRequest{
		X: 5, Y: 5, Item: world.Item{Type: world.ItemFood, Name: "Apple", Value: 20},
	})
	if err != nil || resp.OK {
		t.Fatalf("out of bounds: resp %+v err %v", resp, err)
	}
}

func TestPlaceItem_RejectsInvalidItem(t *testing.T) {
	uc := newAuthoringUC(t)
	if _, err := uc.PlaceItem(context.Background(), ItemRequest{
		X: 0, Y: 0, Item: world.Item{Type: "potion", Name: "Elixir"},
	}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestPlaceTerrain(t *testing.T) {
	uc := newAuthoringUC(t)
	for _, kind := range []TerrainKind{TerrainObstacle, TerrainTrap, TerrainPit} {
		resp, err := uc.PlaceTerrain(context.Background(), TerrainRequest{X: 0, Y: 1, Kind: kind})
		if err != nil || !resp.OK {
			t.Fatalf("%s: resp %+v err %v", kind, resp, err)
		}
	}
	if _, err := uc.PlaceTerrain(context.Background(), TerrainRequest{X: 0, Y: 0, Kind: "lava"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("unknown kind: %v", err)
	}
	resp, err := uc.PlaceTerrain(context.Background(), TerrainRequest{X: 9, Y: 9, Kind: TerrainTrap})
	if err != nil || resp.OK {
		t.Fatalf("out of bounds: resp %+v err %v", resp, err)
	}
}
