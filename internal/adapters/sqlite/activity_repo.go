package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

// ActivityRepository implements secondary.ActivityRepository with SQLite.
type ActivityRepository struct {
	*orderedTable[secondary.ActivityRecord, ordinal.ParentID]
	db *sql.DB
}

var activityColumn = parentScheme("column_id")

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{
		orderedTable: &orderedTable[secondary.ActivityRecord, ordinal.ParentID]{
			db:     db,
			table:  "activities",
			kind:   "activity",
			scheme: activityColumn,
			insert: func(ctx context.Context, q querier, pos ordinal.Position[ordinal.ParentID], a secondary.ActivityRecord) (sql.Result, error) {
				return q.ExecContext(ctx,
					"INSERT INTO activities (name, body, column_id, ordinal) VALUES (?, ?, ?, ?)",
					a.Name, nullString(a.Body), activityColumn.value(pos.Partition), pos.Ordinal,
				)
			},
		},
		db: db,
	}
}

const activitySelect = "id, name, body, column_id, ordinal, created_at, updated_at"

// GetByID retrieves an activity by its ID.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*secondary.ActivityRecord, error) {
	record, err := scanActivity(conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT "+activitySelect+" FROM activities WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, ordinal.NotFound("activity", id)
	}
	if err != nil {
		return nil, ordinal.Storage("failed to get activity", err)
	}
	return record, nil
}

// List retrieves activities in one column, or the stash, ordered by ordinal.
func (r *ActivityRepository) List(ctx context.Context, column ordinal.ParentID) ([]*secondary.ActivityRecord, error) {
	return r.query(ctx,
		"SELECT "+activitySelect+" FROM activities WHERE column_id IS ? ORDER BY ordinal, id",
		activityColumn.value(column),
	)
}

// ListAll retrieves every activity ordered by column then ordinal.
func (r *ActivityRepository) ListAll(ctx context.Context) ([]*secondary.ActivityRecord, error) {
	return r.query(ctx,
		"SELECT " + activitySelect + " FROM activities ORDER BY column_id, ordinal, id",
	)
}

func (r *ActivityRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.ActivityRecord, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ordinal.Storage("failed to list activities", err)
	}
	defer rows.Close()

	var activities []*secondary.ActivityRecord
	for rows.Next() {
		record, err := scanActivity(rows)
		if err != nil {
			return nil, ordinal.Storage("failed to scan activity", err)
		}
		activities = append(activities, record)
	}
	if err := rows.Err(); err != nil {
		return nil, ordinal.Storage("failed to list activities", err)
	}

	return activities, nil
}

// UpdateContent changes an activity's name and body.
func (r *ActivityRepository) UpdateContent(ctx context.Context, id int64, name, body string) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE activities SET name = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		name, nullString(body), id,
	)
	if err != nil {
		return ordinal.Storage("failed to update activity", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound("activity", id)
	}
	return nil
}

// AddTag attaches a tag to an activity. Attaching twice is a no-op.
func (r *ActivityRepository) AddTag(ctx context.Context, activityID, tagID int64) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		"INSERT OR IGNORE INTO activity_tags (activity_id, tag_id) VALUES (?, ?)",
		activityID, tagID,
	)
	if err != nil {
		return ordinal.Storage("failed to add activity tag", err)
	}
	return nil
}

// RemoveTag detaches a tag from an activity.
func (r *ActivityRepository) RemoveTag(ctx context.Context, activityID, tagID int64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM activity_tags WHERE activity_id = ? AND tag_id = ?",
		activityID, tagID,
	)
	if err != nil {
		return ordinal.Storage("failed to remove activity tag", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound("activity tag", tagID)
	}
	return nil
}

// TagIDs returns the tag IDs attached to an activity.
func (r *ActivityRepository) TagIDs(ctx context.Context, activityID int64) ([]int64, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		"SELECT tag_id FROM activity_tags WHERE activity_id = ? ORDER BY tag_id",
		activityID,
	)
	if err != nil {
		return nil, ordinal.Storage("failed to list activity tags", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, ordinal.Storage("failed to scan activity tag", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, ordinal.Storage("failed to list activity tags", err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*secondary.ActivityRecord, error) {
	var (
		body      sql.NullString
		column    sql.NullInt64
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ActivityRecord{}
	if err := row.Scan(&record.ID, &record.Name, &body, &column, &record.Ordinal, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	record.Body = body.String
	record.ColumnID = activityColumn.key(column)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure ActivityRepository implements the interface.
var _ secondary.ActivityRepository = (*ActivityRepository)(nil)
