package repository

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	schema := `
    CREATE TABLE IF NOT EXISTS sync_runs (
        id TEXT PRIMARY KEY,
        source TEXT NOT NULL,
        status TEXT NOT NULL,
        total INTEGER DEFAULT 0,
        succeeded INTEGER DEFAULT 0,
        failed INTEGER DEFAULT 0,
        skipped INTEGER DEFAULT 0,
        started_at DATETIME NOT NULL,
        completed_at DATETIME
    );

    CREATE TABLE IF NOT EXISTS entity_syncs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT NOT NULL,
        type_name TEXT NOT NULL,
        integration_id TEXT NOT NULL DEFAULT '',
        status TEXT NOT NULL,
        fingerprint TEXT NOT NULL DEFAULT '',
        remote_id TEXT NOT NULL DEFAULT '',
        message TEXT NOT NULL DEFAULT '',
        created_at DATETIME NOT NULL,
        FOREIGN KEY (run_id) REFERENCES sync_runs(id)
    );

    CREATE INDEX IF NOT EXISTS idx_entity_syncs_identity
        ON entity_syncs (type_name, integration_id, status);
    `

	_, err := db.Exec(schema)
	return err
}
