package trace

import (
	"context"
	"sync/atomic"
	"time"

	"gridworld/internal/app/ports"

	"github.com/google/uuid"
)

// Tracer assigns process-order sequence numbers to world calls and appends
// them to the journal. It is strictly best-effort: a failing journal never
// affects the traced call's result or ordering. A nil Tracer records
// nothing.
type Tracer struct {
	Repo ports.TraceRepository
	Now  func() time.Time

	seq atomic.Uint64
}

func (t *Tracer) Record(ctx context.Context, op, agent string, args map[string]any, result any) {
	if t == nil || t.Repo == nil {
		return
	}
	nowFn := t.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rec := ports.TraceRecord{
		ID:         uuid.NewString(),
		Seq:        t.seq.Add(1),
		Op:         op,
		Agent:      agent,
		Args:       args,
		Result:     result,
		RecordedAt: nowFn(),
	}
	_ = t.Repo.Append(ctx, rec)
}
