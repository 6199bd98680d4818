package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"gridworld/internal/app/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS trace_records (
  id          TEXT PRIMARY KEY,
  seq         INTEGER NOT NULL UNIQUE,
  op          TEXT NOT NULL,
  agent       TEXT NOT NULL DEFAULT '',
  args        TEXT NOT NULL DEFAULT '{}',
  result      TEXT NOT NULL DEFAULT 'null',
  recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trace_op ON trace_records(op);
`

type Repo struct {
	db *sql.DB
}

func Open(path string) (*Repo, error) {
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// modernc sqlite is happiest with a single writer connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &Repo{db: db}, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

func (r *Repo) Append(ctx context.Context, rec ports.TraceRecord) error {
	args, _ := json.Marshal(rec.Args)
	result, _ := json.Marshal(rec.Result)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trace_records (id, seq, op, agent, args, result, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Seq, rec.Op, rec.Agent, string(args), string(result),
		rec.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (r *Repo) List(ctx context.Context, limit int) ([]ports.TraceRecord, error) {
	q := `SELECT id, seq, op, agent, args, result, recorded_at
	      FROM trace_records ORDER BY seq DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ports.TraceRecord{}
	for rows.Next() {
		var rec ports.TraceRecord
		var args, result, recordedAt string
		if err := rows.Scan(&rec.ID, &rec.Seq, &rec.Op, &rec.Agent, &args, &result, &recordedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(args), &rec.Args)
		_ = json.Unmarshal([]byte(result), &rec.Result)
		rec.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Rows came newest-first; flip into sequence order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
