package turn

import (
	"context"
	"errors"

	"gridworld/internal/app/trace"
	"gridworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid turn request")

type UseCase struct {
	World  *world.World
	Tracer *trace.Tracer
}

type Request struct {
	// Budget is the per-agent action-point allowance for the new turn.
	// Zero means the default.
	Budget int
}

type Response struct {
	Turn   int `json:"turn"`
	Budget int `json:"budget"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Budget < 0 {
		return Response{}, ErrInvalidRequest
	}
	budget := req.Budget
	if budget == 0 {
		budget = world.DefaultTurnBudget
	}
	turn := u.World.NewTurn(budget)
	u.Tracer.Record(ctx, "new_turn", "", map[string]any{"budget": budget}, turn)
	return Response{Turn: turn, Budget: budget}, nil
}
