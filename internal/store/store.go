// Package store provides SQLite-backed persistence for model access
// history. The manager treats it as the external last-access signal: it is
// written through on every load touch so a fresh process can warm its LRU
// ordering, but it is never consulted for admission decisions.
// Uses WAL mode for concurrent reads and crash-safe writes.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at path, creating parent
// directories as needed. Enables WAL mode and a 5-second busy timeout.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS model_access (
			model_id   TEXT PRIMARY KEY,
			last_used  INTEGER NOT NULL,
			loads      INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_model_access_used ON model_access(last_used)`,
	}
	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Touch records an access of modelID at the given time, bumping the load
// counter. Implements the manager's AccessRecorder.
func (d *DB) Touch(modelID string, at time.Time) error {
	_, err := d.db.Exec(`INSERT INTO model_access (model_id, last_used, loads) VALUES (?, ?, 1)
		ON CONFLICT(model_id) DO UPDATE SET last_used = excluded.last_used, loads = loads + 1`,
		modelID, at.Unix())
	if err != nil {
		return fmt.Errorf("touch %s: %w", modelID, err)
	}
	return nil
}

// LastUsed reports the most recent recorded access for modelID.
func (d *DB) LastUsed(modelID string) (time.Time, bool, error) {
	var unix int64
	err := d.db.QueryRow(`SELECT last_used FROM model_access WHERE model_id = ?`, modelID).Scan(&unix)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("last used %s: %w", modelID, err)
	}
	return time.Unix(unix, 0), true, nil
}

// AccessRow is one row of the access history.
type AccessRow struct {
	ModelID  string
	LastUsed time.Time
	Loads    int64
}

// Recent returns up to limit access rows, most recently used first.
func (d *DB) Recent(limit int) ([]AccessRow, error) {
	rows, err := d.db.Query(`SELECT model_id, last_used, loads FROM model_access ORDER BY last_used DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()
	var out []AccessRow
	for rows.Next() {
		var r AccessRow
		var unix int64
		if err := rows.Scan(&r.ModelID, &unix, &r.Loads); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.LastUsed = time.Unix(unix, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}
