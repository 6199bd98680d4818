package authoring

import (
	"context"
	"errors"

	"gridworld/internal/app/trace"
	"gridworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid authoring request")

type TerrainKind string

const (
	TerrainObstacle TerrainKind = "obstacle"
	TerrainTrap     TerrainKind = "trap"
	TerrainPit      TerrainKind = "pit"
)

type UseCase struct {
	World  *world.World
	Tracer *trace.Tracer
}

type ItemRequest struct {
	X    int
	Y    int
	Item world.Item
}

type TerrainRequest struct {
	X    int
	Y    int
	Kind TerrainKind
}

type Response struct {
	OK bool `json:"ok"`
}

func (u UseCase) PlaceItem(ctx context.Context, req ItemRequest) (Response, error) {
	if err := req.Item.Validate(); err != nil {
		return Response{}, ErrInvalidRequest
	}
	ok := u.World.AddItem(req.X, req.Y, req.Item)
	u.Tracer.Record(ctx, "add_item", "", map[string]any{
		"x": req.X, "y": req.Y, "item": req.Item.Name,
	}, ok)
	return Response{OK: ok}, nil
}

func (u UseCase) PlaceTerrain(ctx context.Context, req TerrainRequest) (Response, error) {
	var ok bool
	switch req.Kind {
	case TerrainObstacle:
		ok = u.World.AddObstacle(req.X, req.Y)
	case TerrainTrap:
		ok = u.World.AddTrap(req.X, req.Y)
	case TerrainPit:
		ok = u.World.AddPit(req.X, req.Y)
	default:
		return Response{}, ErrInvalidRequest
	}
	u.Tracer.Record(ctx, "add_"+string(req.Kind), "", map[string]any{"x": req.X, "y": req.Y}, ok)
	return Response{OK: ok}, nil
}
