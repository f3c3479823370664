// Package db owns the SQLite database file and its schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the database at path, creating its directory if needed.
// Use ":memory:" for a throwaway database.
//
// The handle is capped at a single connection: SQLite has one writer, and an
// in-memory database only exists on the connection that created it.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}

// DefaultPath returns the path to the database file under home.
func DefaultPath(home string) string {
	return filepath.Join(home, ".banban", "banban.db")
}

func dsn(path string) string {
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}
