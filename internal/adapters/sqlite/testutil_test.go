// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// setupTestDB runs the embedded goose migrations, so tests run against the
// same schema as production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/banban/internal/db"
)

// setupTestDB creates an in-memory database migrated to the latest schema.
// The handle holds a single connection, so every test sees one database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.Migrate(context.Background(), testDB, nil); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedColumn inserts a column at ordinal and returns its ID.
func seedColumn(t *testing.T, db *sql.DB, name string, ord int) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO columns (name, ordinal) VALUES (?, ?)", name, ord)
	if err != nil {
		t.Fatalf("failed to seed column: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedActivity inserts an activity and returns its ID. A zero columnID puts
// the activity in the stash.
func seedActivity(t *testing.T, db *sql.DB, name string, columnID int64, ord int) int64 {
	t.Helper()
	var column sql.NullInt64
	if columnID != 0 {
		column = sql.NullInt64{Int64: columnID, Valid: true}
	}
	res, err := db.Exec("INSERT INTO activities (name, column_id, ordinal) VALUES (?, ?, ?)", name, column, ord)
	if err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedCategory inserts a category at ordinal and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, name string, ord int) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO categories (name, ordinal) VALUES (?, ?)", name, ord)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedTag inserts a category tag and returns its ID. A zero categoryID makes
// the tag uncategorized.
func seedTag(t *testing.T, db *sql.DB, name string, categoryID int64, ord int) int64 {
	t.Helper()
	var category sql.NullInt64
	if categoryID != 0 {
		category = sql.NullInt64{Int64: categoryID, Valid: true}
	}
	res, err := db.Exec("INSERT INTO category_tags (name, category_id, ordinal, color) VALUES (?, ?, ?, 'FFFFFF')", name, category, ord)
	if err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// ordinalsByID returns id -> ordinal for every row of table.
func ordinalsByID(t *testing.T, db *sql.DB, table string) map[int64]int {
	t.Helper()
	rows, err := db.Query("SELECT id, ordinal FROM " + table)
	if err != nil {
		t.Fatalf("failed to read %s ordinals: %v", table, err)
	}
	defer rows.Close()

	out := make(map[int64]int)
	for rows.Next() {
		var id int64
		var ord int
		if err := rows.Scan(&id, &ord); err != nil {
			t.Fatalf("failed to scan %s ordinal: %v", table, err)
		}
		out[id] = ord
	}
	return out
}
