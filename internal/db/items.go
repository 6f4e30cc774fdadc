package db

import (
	"database/sql"
	"fmt"

	"tabulo/internal/model"
)

// ListItems retrieves all inventory rows.
func ListItems(db *sql.DB) ([]model.Item, error) {
	query := `
		SELECT
			id,
			name,
			COALESCE(category, ''),
			qty,
			price,
			COALESCE(updated_on, '')
		FROM items
		ORDER BY name COLLATE NOCASE
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var results []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Qty, &it.Price, &it.UpdatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		results = append(results, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return results, nil
}

// seedItems inserts the demo inventory on first run.
func seedItems(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []model.Item{
		{Name: "Espresso beans", Category: "Coffee", Qty: 42, Price: 14.50, UpdatedOn: "2026-08-12"},
		{Name: "Filter papers", Category: "Coffee", Qty: 180, Price: 3.20, UpdatedOn: "2026-07-30"},
		{Name: "Ceramic mug", Category: "Crockery", Qty: 24, Price: 8.00, UpdatedOn: "2026-08-20"},
		{Name: "Oat milk", Category: "Dairy", Qty: 12, Price: 2.10, UpdatedOn: "2026-08-28"},
		{Name: "Whole milk", Category: "Dairy", Qty: 18, Price: 1.60, UpdatedOn: "2026-08-27"},
		{Name: "Croissant", Category: "Bakery", Qty: 9, Price: 2.80, UpdatedOn: "2026-08-29"},
		{Name: "Sourdough loaf", Category: "Bakery", Qty: 6, Price: 5.50, UpdatedOn: "2026-08-29"},
		{Name: "Teaspoons", Category: "Crockery", Qty: 60, Price: 0.90, UpdatedOn: "2026-06-02"},
		{Name: "Matcha powder", Category: "Tea", Qty: 0, Price: 19.00, UpdatedOn: "2026-05-18"},
		{Name: "Earl Grey tin", Category: "Tea", Qty: 15, Price: 7.40, UpdatedOn: "2026-08-01"},
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO items (name, category, qty, price, updated_on) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range seed {
		if _, err := stmt.Exec(it.Name, it.Category, it.Qty, it.Price, it.UpdatedOn); err != nil {
			return fmt.Errorf("failed to insert seed item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
