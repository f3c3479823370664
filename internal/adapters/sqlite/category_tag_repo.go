package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

// CategoryTagRepository implements secondary.CategoryTagRepository with SQLite.
type CategoryTagRepository struct {
	*orderedTable[secondary.CategoryTagRecord, ordinal.ParentID]
	db *sql.DB
}

var tagCategory = parentScheme("category_id")

// NewCategoryTagRepository creates a new SQLite category tag repository.
func NewCategoryTagRepository(db *sql.DB) *CategoryTagRepository {
	return &CategoryTagRepository{
		orderedTable: &orderedTable[secondary.CategoryTagRecord, ordinal.ParentID]{
			db:     db,
			table:  "category_tags",
			kind:   "tag",
			scheme: tagCategory,
			insert: func(ctx context.Context, q querier, pos ordinal.Position[ordinal.ParentID], tag secondary.CategoryTagRecord) (sql.Result, error) {
				return q.ExecContext(ctx,
					"INSERT INTO category_tags (name, category_id, ordinal, color) VALUES (?, ?, ?, ?)",
					tag.Name, tagCategory.value(pos.Partition), pos.Ordinal, tag.Color,
				)
			},
		},
		db: db,
	}
}

const tagSelect = "id, name, category_id, ordinal, color, created_at, updated_at"

// GetByID retrieves a tag by its ID.
func (r *CategoryTagRepository) GetByID(ctx context.Context, id int64) (*secondary.CategoryTagRecord, error) {
	record, err := scanTag(conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT "+tagSelect+" FROM category_tags WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, ordinal.NotFound("tag", id)
	}
	if err != nil {
		return nil, ordinal.Storage("failed to get tag", err)
	}
	return record, nil
}

// List retrieves the tags of one category, or the uncategorized tags.
func (r *CategoryTagRepository) List(ctx context.Context, category ordinal.ParentID) ([]*secondary.CategoryTagRecord, error) {
	return r.query(ctx,
		"SELECT "+tagSelect+" FROM category_tags WHERE category_id IS ? ORDER BY ordinal, id",
		tagCategory.value(category),
	)
}

// ListAll retrieves every tag ordered by category then ordinal.
func (r *CategoryTagRepository) ListAll(ctx context.Context) ([]*secondary.CategoryTagRecord, error) {
	return r.query(ctx,
		"SELECT " + tagSelect + " FROM category_tags ORDER BY category_id, ordinal, id",
	)
}

func (r *CategoryTagRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.CategoryTagRecord, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ordinal.Storage("failed to list tags", err)
	}
	defer rows.Close()

	var tags []*secondary.CategoryTagRecord
	for rows.Next() {
		record, err := scanTag(rows)
		if err != nil {
			return nil, ordinal.Storage("failed to scan tag", err)
		}
		tags = append(tags, record)
	}
	if err := rows.Err(); err != nil {
		return nil, ordinal.Storage("failed to list tags", err)
	}

	return tags, nil
}

// Rename changes a tag's name.
func (r *CategoryTagRepository) Rename(ctx context.Context, id int64, name string) error {
	return r.update(ctx, id, "name", name)
}

// Recolor changes a tag's colour.
func (r *CategoryTagRepository) Recolor(ctx context.Context, id int64, color string) error {
	return r.update(ctx, id, "color", color)
}

func (r *CategoryTagRepository) update(ctx context.Context, id int64, column string, value string) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE category_tags SET "+column+" = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		value, id,
	)
	if err != nil {
		return ordinal.Storage("failed to update tag "+column, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound("tag", id)
	}
	return nil
}

func scanTag(row rowScanner) (*secondary.CategoryTagRecord, error) {
	var (
		category  sql.NullInt64
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.CategoryTagRecord{}
	if err := row.Scan(&record.ID, &record.Name, &category, &record.Ordinal, &record.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	record.CategoryID = tagCategory.key(category)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Ensure CategoryTagRepository implements the interface.
var _ secondary.CategoryTagRepository = (*CategoryTagRepository)(nil)
