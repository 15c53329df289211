// Package storage persists the interaction audit log. The engine never reads
// this data; it is an append-only side record of determinations and failures.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the interaction log using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance and runs migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		counterparty_type TEXT NOT NULL,
		has_tax_id BOOLEAN NOT NULL,
		gross_up BOOLEAN NOT NULL,
		description TEXT NOT NULL,
		language TEXT NOT NULL,
		tax_type TEXT NOT NULL DEFAULT '',
		rate_percentage TEXT NOT NULL DEFAULT '',
		tax_base TEXT NOT NULL DEFAULT '',
		tax_amount TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_created_at ON interactions(created_at);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Interaction is one recorded determination request and its outcome.
// Monetary fields are stored as decimal strings to avoid float drift.
type Interaction struct {
	ID               string
	CreatedAt        time.Time
	CounterpartyType string
	HasTaxID         bool
	GrossUp          bool
	Description      string
	Language         string
	TaxType          string
	RatePercentage   string
	TaxBase          string
	TaxAmount        string
	Error            string
}

// RecordInteraction appends an interaction to the log, assigning an ID and
// timestamp when absent.
func (s *SQLiteStorage) RecordInteraction(ctx context.Context, rec Interaction) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (
			id, created_at, counterparty_type, has_tax_id, gross_up,
			description, language, tax_type, rate_percentage, tax_base, tax_amount, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.CounterpartyType, rec.HasTaxID, rec.GrossUp,
		rec.Description, rec.Language, rec.TaxType, rec.RatePercentage,
		rec.TaxBase, rec.TaxAmount, rec.Error)
	if err != nil {
		return "", fmt.Errorf("failed to record interaction: %w", err)
	}

	return rec.ID, nil
}

// RecentInteractions returns the most recent interactions, newest first.
func (s *SQLiteStorage) RecentInteractions(ctx context.Context, limit int) ([]Interaction, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, counterparty_type, has_tax_id, gross_up,
			description, language, tax_type, rate_percentage, tax_base, tax_amount, error
		FROM interactions
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Interaction
	for rows.Next() {
		var rec Interaction
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.CounterpartyType, &rec.HasTaxID, &rec.GrossUp,
			&rec.Description, &rec.Language, &rec.TaxType, &rec.RatePercentage,
			&rec.TaxBase, &rec.TaxAmount, &rec.Error,
		); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
