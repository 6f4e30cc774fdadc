package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    category   TEXT,
    qty        INTEGER NOT NULL DEFAULT 0 CHECK(qty >= 0),
    price      REAL NOT NULL DEFAULT 0 CHECK(price >= 0),
    updated_on TEXT,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS table_prefs (
    table_name     TEXT PRIMARY KEY,
    sort_key       TEXT NOT NULL DEFAULT '',
    sort_desc      INTEGER NOT NULL DEFAULT 0 CHECK(sort_desc IN (0,1)),
    filter_key     TEXT NOT NULL DEFAULT '',
    filter_text    TEXT NOT NULL DEFAULT '',
    case_sensitive INTEGER NOT NULL DEFAULT 0 CHECK(case_sensitive IN (0,1)),
    updated_at     TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
CREATE INDEX IF NOT EXISTS idx_items_updated_on ON items(updated_on DESC);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := seedItems(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	return db, nil
}
