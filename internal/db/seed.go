package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotEmpty is returned by SeedFixtures when the board already has rows.
var ErrNotEmpty = errors.New("database is not empty")

// seededTables are checked for rows before seeding.
var seededTables = []string{"columns", "activities", "categories", "category_tags"}

// SeedFixtures populates an empty database with a small demo board. It
// returns ErrNotEmpty when any board table already has rows.
// Ordinals are written dense per partition, so the board starts consistent.
func SeedFixtures(ctx context.Context, database *sql.DB) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range seededTables {
		var n int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return fmt.Errorf("seed: failed to count %s: %w", table, err)
		}
		if n > 0 {
			return fmt.Errorf("seed: %s has %d rows: %w", table, n, ErrNotEmpty)
		}
	}

	// Columns
	columns := []struct {
		id   int64
		name string
	}{
		{1, "Todo"},
		{2, "Doing"},
		{3, "Done"},
	}
	for i, c := range columns {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO columns (id, name, ordinal) VALUES (?, ?, ?)",
			c.id, c.name, i,
		); err != nil {
			return fmt.Errorf("seed columns: %w", err)
		}
	}

	// Activities (column 0 means the stash)
	activities := []struct {
		id       int64
		name     string
		body     string
		columnID int64
		ordinal  int
	}{
		{1, "Home chores", "Clean the house", 1, 0},
		{2, "Groceries", "Milk, eggs, coffee", 1, 1},
		{3, "Tax return", "", 2, 0},
		{4, "Book flights", "", 3, 0},
		{5, "Learn the banjo", "Someday", 0, 0},
	}
	for _, a := range activities {
		var body sql.NullString
		if a.body != "" {
			body = sql.NullString{String: a.body, Valid: true}
		}
		var column sql.NullInt64
		if a.columnID != 0 {
			column = sql.NullInt64{Int64: a.columnID, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO activities (id, name, body, column_id, ordinal) VALUES (?, ?, ?, ?, ?)",
			a.id, a.name, body, column, a.ordinal,
		); err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}
	}

	// Categories
	categories := []struct {
		id   int64
		name string
	}{
		{1, "Priority"},
		{2, "Area"},
	}
	for i, c := range categories {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO categories (id, name, ordinal) VALUES (?, ?, ?)",
			c.id, c.name, i,
		); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	// Tags (category 0 means uncategorized)
	tags := []struct {
		id         int64
		name       string
		categoryID int64
		ordinal    int
		color      string
	}{
		{1, "urgent", 1, 0, "D03030"},
		{2, "someday", 1, 1, "3070D0"},
		{3, "home", 2, 0, "30A050"},
		{4, "finance", 2, 1, "C0A030"},
		{5, "fun", 0, 0, "A050C0"},
	}
	for _, t := range tags {
		var category sql.NullInt64
		if t.categoryID != 0 {
			category = sql.NullInt64{Int64: t.categoryID, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO category_tags (id, name, category_id, ordinal, color) VALUES (?, ?, ?, ?, ?)",
			t.id, t.name, category, t.ordinal, t.color,
		); err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}
	}

	// Activity tags
	links := []struct{ activityID, tagID int64 }{
		{1, 3},
		{2, 3},
		{3, 1},
		{3, 4},
		{5, 5},
	}
	for _, l := range links {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO activity_tags (activity_id, tag_id) VALUES (?, ?)",
			l.activityID, l.tagID,
		); err != nil {
			return fmt.Errorf("seed activity tags: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: failed to commit: %w", err)
	}
	return nil
}
