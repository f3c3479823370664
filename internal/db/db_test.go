package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestOpenAndMigrate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "banban.db")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if err := Migrate(ctx, database, nil); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	// Second run is a no-op.
	if err := Migrate(ctx, database, nil); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	v, err := Version(ctx, database)
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != 1 {
		t.Errorf("expected schema version 1, got %d", v)
	}
}

func TestOpen_ForeignKeysEnabled(t *testing.T) {
	ctx := context.Background()
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if err := Migrate(ctx, database, nil); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	_, err = database.Exec("INSERT INTO activities (name, column_id, ordinal) VALUES ('orphan', 99, 0)")
	if err == nil {
		t.Error("expected foreign key violation for unknown column")
	}
}

func TestSeedFixtures(t *testing.T) {
	ctx := context.Background()
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if err := Migrate(ctx, database, nil); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if err := SeedFixtures(ctx, database); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	counts := map[string]int{
		"columns":       3,
		"activities":    5,
		"categories":    2,
		"category_tags": 5,
		"activity_tags": 5,
	}
	for table, want := range counts {
		var got int
		if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s: expected %d rows, got %d", table, want, got)
		}
	}
}

func TestSeedFixtures_RejectsNonEmptyBoard(t *testing.T) {
	ctx := context.Background()
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if err := Migrate(ctx, database, nil); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if _, err := database.Exec("INSERT INTO columns (id, name, ordinal) VALUES (4, 'Backlog', 0)"); err != nil {
		t.Fatalf("insert column: %v", err)
	}

	err = SeedFixtures(ctx, database)
	if !errors.Is(err, ErrNotEmpty) {
		t.Fatalf("expected ErrNotEmpty, got %v", err)
	}

	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM columns").Scan(&n); err != nil {
		t.Fatalf("count columns: %v", err)
	}
	if n != 1 {
		t.Errorf("expected the existing column only, got %d rows", n)
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("/home/user")
	want := filepath.Join("/home/user", ".banban", "banban.db")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
