package db

import (
	"database/sql"
	"errors"
	"fmt"

	"tabulo/internal/model"
)

// LoadPrefs retrieves persisted preferences for the named table. A table
// with no saved preferences yields the zero value.
func LoadPrefs(db *sql.DB, table string) (model.TablePrefs, error) {
	var p model.TablePrefs
	var sortDesc, caseSensitive int64

	row := db.QueryRow(`
		SELECT sort_key, sort_desc, filter_key, filter_text, case_sensitive
		FROM table_prefs
		WHERE table_name = ?
	`, table)

	err := row.Scan(&p.SortKey, &sortDesc, &p.FilterKey, &p.FilterText, &caseSensitive)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TablePrefs{}, nil
	}
	if err != nil {
		return model.TablePrefs{}, fmt.Errorf("failed to load prefs for %q: %w", table, err)
	}

	p.SortDesc = sortDesc == 1
	p.CaseSensitive = caseSensitive == 1
	return p, nil
}

// SavePrefs upserts preferences for the named table.
func SavePrefs(db *sql.DB, table string, p model.TablePrefs) error {
	_, err := db.Exec(`
		INSERT INTO table_prefs (table_name, sort_key, sort_desc, filter_key, filter_text, case_sensitive, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		ON CONFLICT(table_name) DO UPDATE SET
			sort_key = excluded.sort_key,
			sort_desc = excluded.sort_desc,
			filter_key = excluded.filter_key,
			filter_text = excluded.filter_text,
			case_sensitive = excluded.case_sensitive,
			updated_at = excluded.updated_at
	`, table, p.SortKey, boolToInt(p.SortDesc), p.FilterKey, p.FilterText, boolToInt(p.CaseSensitive))
	if err != nil {
		return fmt.Errorf("failed to save prefs for %q: %w", table, err)
	}
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
