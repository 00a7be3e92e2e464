// Package history records extract/merge operations in a local SQLite
// database so users can recover a previous result from any front end.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/krunkertools/bindsync/internal/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// Operation names stored in the database.
const (
	OpExtract  = "extract"
	OpMerge    = "merge"
	OpValidate = "validate"
)

// Entry is one recorded operation.
type Entry struct {
	ID           int64
	Timestamp    time.Time
	Operation    string // extract | merge | validate
	Frontend     string // tui | cli | web
	SourceFields int    // top-level fields in the source document
	TargetFields int    // top-level fields in the target (merge only)
	Result       string // rendered result document
	Error        string // empty on success
}

// Manager owns the history database connection.
type Manager struct {
	db *sql.DB
}

// NewManager opens (creating if needed) the history database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Save stores one operation record.
func (m *Manager) Save(entry Entry) error {
	query := `
		INSERT INTO operations (
			timestamp, operation, frontend, source_fields, target_fields, result, error
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	timestampStr := ts.Local().Format("2006-01-02 15:04:05")

	_, err := m.db.Exec(query,
		timestampStr,
		entry.Operation,
		entry.Frontend,
		entry.SourceFields,
		entry.TargetFields,
		entry.Result,
		entry.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (m *Manager) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := m.db.Query(`
		SELECT id, timestamp, operation, frontend, source_fields, target_fields, result, COALESCE(error, '')
		FROM operations
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Operation, &e.Frontend, &e.SourceFields, &e.TargetFields, &e.Result, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if parsed, err := time.ParseInLocation("2006-01-02 15:04:05", ts, time.Local); err == nil {
			e.Timestamp = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes all history entries.
func (m *Manager) Clear() error {
	if _, err := m.db.Exec(`DELETE FROM operations`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (m *Manager) Close() error {
	return m.db.Close()
}
