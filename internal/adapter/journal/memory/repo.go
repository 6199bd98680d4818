package memory

import (
	"context"
	"sync"

	"gridworld/internal/app/ports"
)

// Repo is the in-process trace journal used by tests and by servers
// running without a database.
type Repo struct {
	mu      sync.RWMutex
	records []ports.TraceRecord
}

func NewRepo() *Repo {
	return &Repo{}
}

func (r *Repo) Append(_ context.Context, rec ports.TraceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *Repo) List(_ context.Context, limit int) ([]ports.TraceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := r.records
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	out := make([]ports.TraceRecord, len(records))
	copy(out, records)
	return out, nil
}
