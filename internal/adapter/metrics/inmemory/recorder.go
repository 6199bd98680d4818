package inmemory

import "sync"

type Snapshot struct {
	Total     uint64            `json:"total"`
	Success   uint64            `json:"success"`
	Failure   uint64            `json:"failure"`
	ByOp      map[string]uint64 `json:"by_op"`
	FailureBy map[string]uint64 `json:"failure_by_op"`
}

// Recorder counts operation outcomes per op name. A domain failure
// (boolean false) counts as a failure; transport and validation errors
// never reach it.
type Recorder struct {
	mu        sync.Mutex
	success   uint64
	failure   uint64
	byOp      map[string]uint64
	failureBy map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp:      map[string]uint64{},
		failureBy: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOp[op]++
}

func (r *Recorder) RecordFailure(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.failureBy[op]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := Snapshot{
		Success:   r.success,
		Failure:   r.failure,
		Total:     r.success + r.failure,
		ByOp:      make(map[string]uint64, len(r.byOp)),
		FailureBy: make(map[string]uint64, len(r.failureBy)),
	}
	for k, v := range r.byOp {
		out.ByOp[k] = v
	}
	for k, v := range r.failureBy {
		out.FailureBy[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
