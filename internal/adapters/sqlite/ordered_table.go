package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/banban/internal/core/ordinal"
)

// partitionScheme maps a partition key type onto a table column.
type partitionScheme[K comparable] struct {
	// column is the partition column; empty for single-partition tables.
	column string
	value  func(K) any
	key    func(sql.NullInt64) K
}

// parentScheme partitions a table by a nullable parent column. NULL is its
// own partition, matched with the null-safe IS operator.
func parentScheme(column string) partitionScheme[ordinal.ParentID] {
	return partitionScheme[ordinal.ParentID]{
		column: column,
		value: func(p ordinal.ParentID) any {
			if !p.Valid {
				return nil
			}
			return p.ID
		},
		key: func(n sql.NullInt64) ordinal.ParentID {
			if !n.Valid {
				return ordinal.NoParent
			}
			return ordinal.Parent(n.Int64)
		},
	}
}

// boardScheme is the scheme of tables with one global partition.
var boardScheme = partitionScheme[ordinal.Board]{
	value: func(ordinal.Board) any { return nil },
	key:   func(sql.NullInt64) ordinal.Board { return ordinal.Board{} },
}

// insertFunc writes a new row for payload at pos.
type insertFunc[E any, K comparable] func(ctx context.Context, q querier, pos ordinal.Position[K], payload E) (sql.Result, error)

// orderedTable implements the ordering primitives shared by every orderable
// table. Repositories embed it and add their entity-specific queries.
type orderedTable[E any, K comparable] struct {
	db     *sql.DB
	table  string
	kind   string
	scheme partitionScheme[K]
	insert insertFunc[E, K]
}

// where returns the predicate selecting partition.
func (t *orderedTable[E, K]) where(partition K) (string, []any) {
	if t.scheme.column == "" {
		return "1 = 1", nil
	}
	return t.scheme.column + " IS ?", []any{t.scheme.value(partition)}
}

// partitionExpr is the select expression for the partition column.
func (t *orderedTable[E, K]) partitionExpr() string {
	if t.scheme.column == "" {
		return "NULL"
	}
	return t.scheme.column
}

// Position returns the partition and ordinal of id.
func (t *orderedTable[E, K]) Position(ctx context.Context, id int64) (ordinal.Position[K], error) {
	var (
		partition sql.NullInt64
		ord       int
	)
	err := conn(ctx, t.db).QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s, ordinal FROM %s WHERE id = ?", t.partitionExpr(), t.table),
		id,
	).Scan(&partition, &ord)

	if err == sql.ErrNoRows {
		return ordinal.Position[K]{}, ordinal.NotFound(t.kind, id)
	}
	if err != nil {
		return ordinal.Position[K]{}, ordinal.Storage(fmt.Sprintf("failed to get %s position", t.kind), err)
	}

	return ordinal.Position[K]{Partition: t.scheme.key(partition), Ordinal: ord}, nil
}

// Count returns the number of rows in partition.
func (t *orderedTable[E, K]) Count(ctx context.Context, partition K) (int, error) {
	pred, args := t.where(partition)

	var n int
	err := conn(ctx, t.db).QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", t.table, pred),
		args...,
	).Scan(&n)
	if err != nil {
		return 0, ordinal.Storage(fmt.Sprintf("failed to count %s rows", t.kind), err)
	}
	return n, nil
}

// ShiftLeft decrements every ordinal > start in partition with one UPDATE.
func (t *orderedTable[E, K]) ShiftLeft(ctx context.Context, partition K, start int) error {
	pred, args := t.where(partition)

	_, err := conn(ctx, t.db).ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET ordinal = ordinal - 1 WHERE %s AND ordinal > ?", t.table, pred),
		append(args, start)...,
	)
	if err != nil {
		return ordinal.Storage(fmt.Sprintf("failed to left shift %s ordinals", t.kind), err)
	}
	return nil
}

// ShiftRight increments every ordinal >= start in partition with one UPDATE.
func (t *orderedTable[E, K]) ShiftRight(ctx context.Context, partition K, start int) error {
	pred, args := t.where(partition)

	_, err := conn(ctx, t.db).ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET ordinal = ordinal + 1 WHERE %s AND ordinal >= ?", t.table, pred),
		append(args, start)...,
	)
	if err != nil {
		return ordinal.Storage(fmt.Sprintf("failed to right shift %s ordinals", t.kind), err)
	}
	return nil
}

// Insert persists payload at pos and returns the new ID.
func (t *orderedTable[E, K]) Insert(ctx context.Context, pos ordinal.Position[K], payload E) (int64, error) {
	result, err := t.insert(ctx, conn(ctx, t.db), pos, payload)
	if err != nil {
		return 0, ordinal.Storage(fmt.Sprintf("failed to insert %s", t.kind), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, ordinal.Storage(fmt.Sprintf("failed to read %s id", t.kind), err)
	}
	return id, nil
}

// Delete removes id.
func (t *orderedTable[E, K]) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, t.db).ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.table),
		id,
	)
	if err != nil {
		return ordinal.Storage(fmt.Sprintf("failed to delete %s", t.kind), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound(t.kind, id)
	}
	return nil
}

// Place sets the partition and ordinal of id.
func (t *orderedTable[E, K]) Place(ctx context.Context, id int64, pos ordinal.Position[K]) error {
	query := fmt.Sprintf("UPDATE %s SET ordinal = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", t.table)
	args := []any{pos.Ordinal, id}
	if t.scheme.column != "" {
		query = fmt.Sprintf("UPDATE %s SET %s = ?, ordinal = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", t.table, t.scheme.column)
		args = []any{t.scheme.value(pos.Partition), pos.Ordinal, id}
	}

	result, err := conn(ctx, t.db).ExecContext(ctx, query, args...)
	if err != nil {
		return ordinal.Storage(fmt.Sprintf("failed to place %s", t.kind), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ordinal.NotFound(t.kind, id)
	}
	return nil
}

// Rebase moves every row of from into to with ordinal += offset, in one
// UPDATE. Single-partition tables have nothing to rebase.
func (t *orderedTable[E, K]) Rebase(ctx context.Context, from, to K, offset int) (int, error) {
	if t.scheme.column == "" || from == to {
		return 0, nil
	}

	result, err := conn(ctx, t.db).ExecContext(ctx,
		fmt.Sprintf("UPDATE %[1]s SET ordinal = ordinal + ?, %[2]s = ? WHERE %[2]s IS ?", t.table, t.scheme.column),
		offset, t.scheme.value(to), t.scheme.value(from),
	)
	if err != nil {
		return 0, ordinal.Storage(fmt.Sprintf("failed to rebase %s rows", t.kind), err)
	}

	moved, err := result.RowsAffected()
	if err != nil {
		return 0, ordinal.Storage(fmt.Sprintf("failed to rebase %s rows", t.kind), err)
	}
	return int(moved), nil
}

// Entries returns the ordering state of every row, grouped by partition.
func (t *orderedTable[E, K]) Entries(ctx context.Context) ([]ordinal.Entry[K], error) {
	rows, err := conn(ctx, t.db).QueryContext(ctx,
		fmt.Sprintf("SELECT id, %[1]s, ordinal FROM %[2]s ORDER BY %[1]s, ordinal, id", t.partitionExpr(), t.table),
	)
	if err != nil {
		return nil, ordinal.Storage(fmt.Sprintf("failed to list %s ordinals", t.kind), err)
	}
	defer rows.Close()

	var entries []ordinal.Entry[K]
	for rows.Next() {
		var (
			e         ordinal.Entry[K]
			partition sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &partition, &e.Ordinal); err != nil {
			return nil, ordinal.Storage(fmt.Sprintf("failed to scan %s ordinal", t.kind), err)
		}
		e.Partition = t.scheme.key(partition)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, ordinal.Storage(fmt.Sprintf("failed to list %s ordinals", t.kind), err)
	}

	return entries, nil
}
