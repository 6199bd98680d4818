package roster

import (
	"context"
	"errors"
	"strings"

	"gridworld/internal/app/trace"
	"gridworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid roster request")

const defaultVital = 100

type UseCase struct {
	World  *world.World
	Tracer *trace.Tracer
}

type AddRequest struct {
	Name   string
	Health int
	Energy int
	X      int
	Y      int
}

type RemoveRequest struct {
	Name string
}

type Response struct {
	OK bool `json:"ok"`
}

// Add constructs an agent and registers it into the world. Placement is
// not checked against terrain or occupancy; that matches the world's
// add-agent contract.
func (u UseCase) Add(ctx context.Context, req AddRequest) (Response, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Health < 0 || req.Energy < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.Health == 0 {
		req.Health = defaultVital
	}
	if req.Energy == 0 {
		req.Energy = defaultVital
	}
	agent := world.NewAgent(req.Name, req.Health, req.Energy)
	ok := u.World.AddAgent(agent, world.Point{X: req.X, Y: req.Y})
	u.Tracer.Record(ctx, "add_agent", req.Name, map[string]any{"x": req.X, "y": req.Y}, ok)
	return Response{OK: ok}, nil
}

func (u UseCase) Remove(ctx context.Context, req RemoveRequest) (Response, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return Response{}, ErrInvalidRequest
	}
	ok := false
	if agent, registered := u.World.Agent(req.Name); registered {
		ok = u.World.RemoveAgent(agent)
	}
	u.Tracer.Record(ctx, "remove_agent", req.Name, nil, ok)
	return Response{OK: ok}, nil
}
