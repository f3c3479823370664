package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/banban/internal/ports/primary"
)

// ColumnAdapter translates column commands to ColumnService calls.
type ColumnAdapter struct {
	service primary.ColumnService
	out     io.Writer
}

// NewColumnAdapter creates a new ColumnAdapter with the given service.
func NewColumnAdapter(service primary.ColumnService, out io.Writer) *ColumnAdapter {
	return &ColumnAdapter{service: service, out: out}
}

// Create creates a column. A nil ordinal appends it.
func (a *ColumnAdapter) Create(ctx context.Context, name string, ordinal *int) error {
	column, err := a.service.CreateColumn(ctx, primary.CreateColumnRequest{Name: name, Ordinal: ordinal})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Created column %d: %s (position %d)\n", okMark(), column.ID, column.Name, column.Ordinal)
	return nil
}

// Rename renames a column.
func (a *ColumnAdapter) Rename(ctx context.Context, id int64, name string) error {
	if err := a.service.RenameColumn(ctx, id, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Column %d renamed to %s\n", okMark(), id, name)
	return nil
}

// Move moves a column to a new position.
func (a *ColumnAdapter) Move(ctx context.Context, id int64, ordinal int) error {
	if err := a.service.MoveColumn(ctx, id, ordinal); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Column %d moved to position %d\n", okMark(), id, ordinal)
	return nil
}

// Delete deletes a column; its activities go to the stash.
func (a *ColumnAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.service.DeleteColumn(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Column %d deleted, its activities moved to the stash\n", okMark(), id)
	return nil
}

// List lists columns in board order.
func (a *ColumnAdapter) List(ctx context.Context) error {
	columns, err := a.service.ListColumns(ctx)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		fmt.Fprintln(a.out, "No columns found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tNAME")
	for _, c := range columns {
		fmt.Fprintf(w, "%d\t%d\t%s\n", c.Ordinal, c.ID, c.Name)
	}
	return w.Flush()
}
