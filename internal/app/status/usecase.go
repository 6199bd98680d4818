package status

import (
	"context"
	"errors"
	"strings"

	"gridworld/internal/app/ports"
	"gridworld/internal/app/trace"
	"gridworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	World  *world.World
	Tracer *trace.Tracer
}

type Request struct {
	AgentName string
}

type Response struct {
	State world.AgentReport `json:"state"`
	Turn  int               `json:"turn"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.AgentName = strings.TrimSpace(req.AgentName)
	if req.AgentName == "" {
		return Response{}, ErrInvalidRequest
	}
	agent, ok := u.World.Agent(req.AgentName)
	if !ok {
		return Response{}, ports.ErrNotFound
	}
	state, err := u.World.InspectAgent(agent)
	if err != nil {
		return Response{}, ports.ErrNotFound
	}
	u.Tracer.Record(ctx, "inspect_agent", req.AgentName, nil, true)
	return Response{State: state, Turn: u.World.Turn()}, nil
}
