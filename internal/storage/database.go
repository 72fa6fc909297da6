// Package storage keeps the session's completion log in an in-memory sqlite
// database. Nothing is written to disk; the log is gone when the process exits.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Registers the sqlite driver

	"github.com/conorfennell/learntrack/internal/domain"
)

// memoryDSN is a private in-memory database. A single pooled connection keeps
// every query on the same database.
const memoryDSN = ":memory:"

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a fresh in-memory database and applies the schema.
func Open(ctx context.Context) (*DB, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection and discards the log.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordCompletion stores a completion event. An empty ID is filled with a
// new UUID. The stored record is returned.
func (db *DB) RecordCompletion(ctx context.Context, entry domain.CompletionLog) (domain.CompletionLog, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CompletedAt = entry.CompletedAt.UTC()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO completions (id, item_id, category, time_slot, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.ItemID,
		entry.Category.String(),
		entry.TimeSlot.String(),
		entry.CompletedAt,
	)
	if err != nil {
		return domain.CompletionLog{}, fmt.Errorf("failed to record completion of item %s: %w", entry.ItemID, err)
	}
	return entry, nil
}

// CompletionsBetween returns the completions in [from, to), oldest first.
func (db *DB) CompletionsBetween(ctx context.Context, from, to time.Time) ([]domain.CompletionLog, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, item_id, category, time_slot, completed_at
		FROM completions
		WHERE completed_at >= ? AND completed_at < ?
		ORDER BY completed_at, id
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var entries []domain.CompletionLog
	for rows.Next() {
		var (
			e        domain.CompletionLog
			category string
			slot     string
		)
		if err := rows.Scan(&e.ID, &e.ItemID, &category, &slot, &e.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion row: %w", err)
		}
		e.Category = domain.Category(category)
		e.TimeSlot = domain.TimeSlot(slot)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}
	return entries, nil
}
