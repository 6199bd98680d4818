package status

import (
	"context"
	"errors"
	"testing"

	"gridworld/internal/app/ports"
	"gridworld/internal/domain/world"
)

func TestUseCase_RejectsEmptyAgentName(t *testing.T) {
	w, _ := world.New(world.Config{Width: 2, Height: 2})
	uc := UseCase{World: w}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_UnknownAgentIsNotFound(t *testing.T) {
	w, _ := world.New(world.Config{Width: 2, Height: 2})
	uc := UseCase{World: w}
	if _, err := uc.Execute(context.Background(), Request{AgentName: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUseCase_ReturnsSnapshot(t *testing.T) {
	w, _ := world.New(world.Config{Width: 2, Height: 2})
	a := world.NewAgent("alice", 80, 60)
	a.Inventory = []world.Item{{Type: world.ItemWeapon, Name: "Sword", Value: 5}}
	w.AddAgent(a, world.Point{X: 1, Y: 0})
	w.NewTurn(world.DefaultTurnBudget)

	uc := UseCase{World: w}
	resp, err := uc.Execute(context.Background(), Request{AgentName: "alice"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	state := resp.State
	if state.Name != "alice" || state.Health != 80 || state.Energy != 60 || state.ActionPoints != 100 {
		t.Fatalf("state = %+v", state)
	}
	if len(state.Inventory) != 1 || state.Inventory[0] != "Sword" {
		t.Fatalf("inventory = %v", state.Inventory)
	}
	if resp.Turn != 1 {
		t.Fatalf("turn = %d", resp.Turn)
	}
}

func TestUseCase_DeadAgentIsNotFound(t *testing.T) {
	w, _ := world.New(world.Config{Width: 2, Height: 1})
	w.AddTrap(1, 0)
	a := world.NewAgent("alice", 10, 100)
	w.AddAgent(a, world.Point{X: 0, Y: 0})
	w.NewTurn(world.DefaultTurnBudget)
	w.MoveAgent(a, world.DirEast)

	uc := UseCase{World: w}
	if _, err := uc.Execute(context.Background(), Request{AgentName: "alice"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
