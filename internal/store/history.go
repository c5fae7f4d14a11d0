package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// History keeps one row per processed request. It is bookkeeping for
// operators, not state the pipeline reads back.
type History struct {
	db *sql.DB
}

type Record struct {
	ID             string
	Company        string
	Confidence     string
	FollowUpTiming string
	CreatedAt      time.Time
}

func Open(path string) (*History, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS outreach_history (
		id VARCHAR PRIMARY KEY,
		company VARCHAR NOT NULL,
		confidence VARCHAR NOT NULL,
		follow_up_timing VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Add(ctx context.Context, rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO outreach_history (id, company, confidence, follow_up_timing, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Company, rec.Confidence, rec.FollowUpTiming, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}
	return nil
}

func (h *History) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, company, confidence, follow_up_timing, created_at
		 FROM outreach_history ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Company, &rec.Confidence, &rec.FollowUpTiming, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
