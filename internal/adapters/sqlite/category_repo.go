package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

// CategoryRepository implements secondary.CategoryRepository with SQLite.
type CategoryRepository struct {
	*orderedTable[secondary.CategoryRecord, ordinal.Board]
	db *sql.DB
}

// NewCategoryRepository creates a new SQLite category repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{
		orderedTable: &orderedTable[secondary.CategoryRecord, ordinal.Board]{
			db:     db,
			table:  "categories",
			kind:   "category",
			scheme: boardScheme,
			insert: func(ctx context.Context, q querier, pos ordinal.Position[ordinal.Board], c secondary.CategoryRecord) (sql.Result, error) {
				return q.ExecContext(ctx,
					"INSERT INTO categories (name, ordinal) VALUES (?, ?)",
					c.Name, pos.Ordinal,
				)
			},
		},
		db: db,
	}
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*secondary.CategoryRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.CategoryRecord{}
	err := conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT id, name, ordinal, created_at, updated_at FROM categories WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Ordinal, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ordinal.NotFound("category", id)
	}
	if err != nil {
		return nil, ordinal.Storage("failed to get category", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// List retrieves all categories in board order.
func (r *CategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		"SELECT id, name, ordinal, created_at, updated_at FROM categories ORDER BY ordinal, id",
	)
	if err != nil {
		return nil, ordinal.Storage("failed to list categories", err)
	}
	defer rows.Close()

	var categories []*secondary.CategoryRecord
	for rows.Next() {
		var createdAt, updatedAt time.Time

		record := &secondary.CategoryRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Ordinal, &createdAt, &updatedAt); err != nil {
			return nil, ordinal.Storage("failed to scan category", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		categories = append(categories, record)
	}
	if err := rows.Err(); err != nil {
		return nil, ordinal.Storage("failed to list categories", err)
	}

	return categories, nil
}

// Rename changes a category's name.
func (r *CategoryRepository) Rename(ctx context.Context, id int64, name string) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE categories SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		name, id,
	)
	if err != nil {
		return ordinal.Storage("failed to rename category", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound("category", id)
	}
	return nil
}

// Ensure CategoryRepository implements the interface.
var _ secondary.CategoryRepository = (*CategoryRepository)(nil)
