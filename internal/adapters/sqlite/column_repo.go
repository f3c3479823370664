package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

// ColumnRepository implements secondary.ColumnRepository with SQLite.
type ColumnRepository struct {
	*orderedTable[secondary.ColumnRecord, ordinal.Board]
	db *sql.DB
}

// NewColumnRepository creates a new SQLite column repository.
func NewColumnRepository(db *sql.DB) *ColumnRepository {
	return &ColumnRepository{
		orderedTable: &orderedTable[secondary.ColumnRecord, ordinal.Board]{
			db:     db,
			table:  "columns",
			kind:   "column",
			scheme: boardScheme,
			insert: func(ctx context.Context, q querier, pos ordinal.Position[ordinal.Board], c secondary.ColumnRecord) (sql.Result, error) {
				return q.ExecContext(ctx,
					"INSERT INTO columns (name, ordinal) VALUES (?, ?)",
					c.Name, pos.Ordinal,
				)
			},
		},
		db: db,
	}
}

// GetByID retrieves a column by its ID.
func (r *ColumnRepository) GetByID(ctx context.Context, id int64) (*secondary.ColumnRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.ColumnRecord{}
	err := conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT id, name, ordinal, created_at, updated_at FROM columns WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Ordinal, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ordinal.NotFound("column", id)
	}
	if err != nil {
		return nil, ordinal.Storage("failed to get column", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// List retrieves all columns in board order.
func (r *ColumnRepository) List(ctx context.Context) ([]*secondary.ColumnRecord, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		"SELECT id, name, ordinal, created_at, updated_at FROM columns ORDER BY ordinal, id",
	)
	if err != nil {
		return nil, ordinal.Storage("failed to list columns", err)
	}
	defer rows.Close()

	var columns []*secondary.ColumnRecord
	for rows.Next() {
		var createdAt, updatedAt time.Time

		record := &secondary.ColumnRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Ordinal, &createdAt, &updatedAt); err != nil {
			return nil, ordinal.Storage("failed to scan column", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		columns = append(columns, record)
	}
	if err := rows.Err(); err != nil {
		return nil, ordinal.Storage("failed to list columns", err)
	}

	return columns, nil
}

// Rename changes a column's name.
func (r *ColumnRepository) Rename(ctx context.Context, id int64, name string) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE columns SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		name, id,
	)
	if err != nil {
		return ordinal.Storage("failed to rename column", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound("column", id)
	}
	return nil
}

// Ensure ColumnRepository implements the interface.
var _ secondary.ColumnRepository = (*ColumnRepository)(nil)
