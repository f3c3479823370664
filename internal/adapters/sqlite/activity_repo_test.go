package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/banban/internal/adapters/sqlite"
	"github.com/example/banban/internal/core/ordinal"
)

func TestActivityRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	col := seedColumn(t, db, "Todo", 0)
	seedActivity(t, db, "second", col, 1)
	seedActivity(t, db, "first", col, 0)
	seedActivity(t, db, "stashed", 0, 0)

	activities, err := repo.List(ctx, ordinal.Parent(col))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].Name != "first" || activities[1].Name != "second" {
		t.Errorf("unexpected order: %q, %q", activities[0].Name, activities[1].Name)
	}

	stash, err := repo.List(ctx, ordinal.NoParent)
	if err != nil {
		t.Fatalf("List stash failed: %v", err)
	}
	if len(stash) != 1 || stash[0].Name != "stashed" {
		t.Errorf("expected only the stashed activity, got %d", len(stash))
	}
	if stash[0].ColumnID.Valid {
		t.Error("expected stashed activity to have no column")
	}
}

func TestActivityRepository_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)

	col := seedColumn(t, db, "Todo", 0)
	seedActivity(t, db, "a", col, 0)
	seedActivity(t, db, "s", 0, 0)

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(all))
	}
	if all[0].Name != "s" {
		t.Errorf("expected stash first, got %q", all[0].Name)
	}
}

func TestActivityRepository_UpdateContent(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	id := seedActivity(t, db, "draft", 0, 0)

	if err := repo.UpdateContent(ctx, id, "final", "with body"); err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "final" || got.Body != "with body" {
		t.Errorf("unexpected content: %q / %q", got.Name, got.Body)
	}

	if err := repo.UpdateContent(ctx, id, "final", ""); err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	var isNull bool
	if err := db.QueryRow("SELECT body IS NULL FROM activities WHERE id = ?", id).Scan(&isNull); err != nil {
		t.Fatalf("query body: %v", err)
	}
	if !isNull {
		t.Error("expected empty body to be stored as NULL")
	}

	if err := repo.UpdateContent(ctx, 999, "x", ""); !errors.Is(err, ordinal.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestActivityRepository_Tags(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	a := seedActivity(t, db, "a", 0, 0)
	t1 := seedTag(t, db, "urgent", 0, 0)
	t2 := seedTag(t, db, "fun", 0, 1)

	for _, tag := range []int64{t2, t1, t1} {
		if err := repo.AddTag(ctx, a, tag); err != nil {
			t.Fatalf("AddTag failed: %v", err)
		}
	}

	ids, err := repo.TagIDs(ctx, a)
	if err != nil {
		t.Fatalf("TagIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != t1 || ids[1] != t2 {
		t.Errorf("expected [%d %d], got %v", t1, t2, ids)
	}

	if err := repo.RemoveTag(ctx, a, t1); err != nil {
		t.Fatalf("RemoveTag failed: %v", err)
	}
	if err := repo.RemoveTag(ctx, a, t1); !errors.Is(err, ordinal.ErrNotFound) {
		t.Errorf("expected ErrNotFound removing twice, got %v", err)
	}
}

func TestActivityRepository_DeleteCascadesTags(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	a := seedActivity(t, db, "a", 0, 0)
	tag := seedTag(t, db, "urgent", 0, 0)
	if err := repo.AddTag(ctx, a, tag); err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}

	if err := repo.Delete(ctx, a); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM activity_tags").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected activity_tags cleared, got %d rows", n)
	}
}
