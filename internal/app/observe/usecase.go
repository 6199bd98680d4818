package observe

import (
	"context"
	"errors"
	"strings"

	"gridworld/internal/app/ports"
	"gridworld/internal/app/trace"
	"gridworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	World  *world.World
	Tracer *trace.Tracer
}

type Request struct {
	AgentName string
}

type Response struct {
	State    world.AgentReport `json:"state"`
	Vicinity world.Vicinity    `json:"vicinity"`
}

// Execute returns the agent's own snapshot plus its 3x3 vicinity. Costs
// nothing and works regardless of remaining action points.
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
	vicinity := u.World.InspectVicinity(agent)
	u.Tracer.Record(ctx, "inspect_vicinity", req.AgentName, nil, true)
	return Response{State: state, Vicinity: vicinity}, nil
}
