package gormpg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gridworld/internal/app/ports"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

type traceRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Seq        uint64 `gorm:"uniqueIndex"`
	Op         string `gorm:"size:32;index"`
	Agent      string `gorm:"size:64"`
	Args       []byte
	Result     []byte
	RecordedAt time.Time
}

func (traceRow) TableName() string { return "trace_records" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&traceRow{})
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repo {
	return Repo{db: db}
}

func (r Repo) Append(ctx context.Context, rec ports.TraceRecord) error {
	args, _ := json.Marshal(rec.Args)
	result, _ := json.Marshal(rec.Result)
	row := traceRow{
		ID:         rec.ID,
		Seq:        rec.Seq,
		Op:         rec.Op,
		Agent:      rec.Agent,
		Args:       args,
		Result:     result,
		RecordedAt: rec.RecordedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r Repo) List(ctx context.Context, limit int) ([]ports.TraceRecord, error) {
	rows := []traceRow{}
	query := r.db.WithContext(ctx).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
	})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.TraceRecord, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		rec := ports.TraceRecord{
			ID:         row.ID,
			Seq:        row.Seq,
			Op:         row.Op,
			Agent:      row.Agent,
			RecordedAt: row.RecordedAt,
		}
		if len(row.Args) > 0 {
			_ = json.Unmarshal(row.Args, &rec.Args)
		}
		if len(row.Result) > 0 {
			_ = json.Unmarshal(row.Result, &rec.Result)
		}
		out = append(out, rec)
	}
	return out, nil
}
