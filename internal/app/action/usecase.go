package action

import (
	"context"
	"errors"
	"strings"

	"gridworld/internal/app/ports"
	"gridworld/internal/app/trace"
	"gridworld/internal/domain/world"
)

var (
	ErrInvalidRequest   = errors.New("invalid action request")
	ErrInvalidDirection = errors.New("invalid action direction")
)

type UseCase struct {
	World   *world.World
	Tracer  *trace.Tracer
	Metrics ports.OpMetrics
}

// Execute dispatches one action intent against the world, traces the call
// and reports the boolean outcome. Domain failures are carried in the
// response, never as an error.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.AgentName = strings.TrimSpace(req.AgentName)
	if req.AgentName == "" || !isSupportedIntentType(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}

	dir, err := resolveDirection(req.Intent)
	if err != nil {
		return Response{}, err
	}

	var ok bool
	agent, registered := u.World.Agent(req.AgentName)
	if registered {
		switch req.Intent.Type {
		case IntentMove:
			ok = u.World.MoveAgent(agent, dir)
		case IntentAttack:
			ok = u.World.Attack(agent, dir)
		case IntentPick:
			ok = u.World.PickItem(agent, req.Intent.ItemIndex)
		case IntentEat:
			ok = u.World.EatFood(agent)
		}
	}

	u.Tracer.Record(ctx, string(req.Intent.Type), req.AgentName, traceArgs(req.Intent), ok)
	if u.Metrics != nil {
		if ok {
			u.Metrics.RecordSuccess(string(req.Intent.Type))
		} else {
			u.Metrics.RecordFailure(string(req.Intent.Type))
		}
	}

	resp := Response{OK: ok}
	if report, err := u.inspect(req.AgentName); err == nil {
		resp.State = &report
	}
	return resp, nil
}

func (u UseCase) inspect(name string) (world.AgentReport, error) {
	agent, ok := u.World.Agent(name)
	if !ok {
		return world.AgentReport{}, ports.ErrNotFound
	}
	return u.World.InspectAgent(agent)
}

// resolveDirection rejects everything but the four orthogonal directions
// for move and attack at the boundary, so caller misuse never reaches the
// world's fatal channel.
func resolveDirection(intent Intent) (world.Direction, error) {
	switch intent.Type {
	case IntentMove, IntentAttack:
		dir, ok := world.ParseDirection(intent.Direction)
		if !ok || !dir.Orthogonal() {
			return "", ErrInvalidDirection
		}
		return dir, nil
	}
	return "", nil
}

func isSupportedIntentType(t IntentType) bool {
	switch t {
	case IntentMove, IntentAttack, IntentPick, IntentEat:
		return true
	}
	return false
}

func traceArgs(intent Intent) map[string]any {
	args := map[string]any{}
	switch intent.Type {
	case IntentMove, IntentAttack:
		args["direction"] = intent.Direction
	case IntentPick:
		args["item_index"] = intent.ItemIndex
	}
	return args
}
