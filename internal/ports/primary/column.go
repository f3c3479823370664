// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the board.
package primary

import "context"

// ColumnService defines the primary port for column operations.
type ColumnService interface {
	// CreateColumn creates a column, appended unless an ordinal is given.
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*Column, error)

	// RenameColumn changes a column's name.
	RenameColumn(ctx context.Context, columnID int64, name string) error

	// MoveColumn moves a column to a new position on the board.
	MoveColumn(ctx context.Context, columnID int64, ordinal int) error

	// DeleteColumn deletes a column. Its activities move to the end of the stash.
	DeleteColumn(ctx context.Context, columnID int64) error

	// ListColumns retrieves all columns in board order.
	ListColumns(ctx context.Context) ([]*Column, error)
}

// CreateColumnRequest contains parameters for creating a column.
type CreateColumnRequest struct {
	Name    string
	Ordinal *int // nil appends
}

// Column represents a column at the port boundary.
type Column struct {
	ID        int64
	Name      string
	Ordinal   int
	CreatedAt string
	UpdatedAt string
}
