package ports

import (
	"context"
	"time"
)

// TraceRecord captures one call against the world: a process-order
// sequence number, the operation, its arguments and its outcome. Tracing
// is purely observational and never feeds back into the operations it
// records.
type TraceRecord struct {
	ID         string         `json:"id"`
	Seq        uint64         `json:"seq"`
	Op         string         `json:"op"`
	Agent      string         `json:"agent,omitempty"`
	Args       map[string]any `json:"args,omitempty"`
	Result     any            `json:"result"`
	RecordedAt time.Time      `json:"recorded_at"`
}

type TraceRepository interface {
	Append(ctx context.Context, rec TraceRecord) error
	// List returns records in ascending sequence order. limit <= 0 means
	// no limit.
	List(ctx context.Context, limit int) ([]TraceRecord, error)
}
