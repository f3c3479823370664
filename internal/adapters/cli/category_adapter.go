package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/banban/internal/ports/primary"
)

// CategoryAdapter translates category commands to CategoryService calls.
type CategoryAdapter struct {
	service primary.CategoryService
	out     io.Writer
}

// NewCategoryAdapter creates a new CategoryAdapter with the given service.
func NewCategoryAdapter(service primary.CategoryService, out io.Writer) *CategoryAdapter {
	return &CategoryAdapter{service: service, out: out}
}

// Create creates a category.
func (a *CategoryAdapter) Create(ctx context.Context, name string, ordinal *int) error {
	category, err := a.service.CreateCategory(ctx, primary.CreateCategoryRequest{Name: name, Ordinal: ordinal})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Created category %d: %s\n", okMark(), category.ID, category.Name)
	return nil
}

// Rename renames a category.
func (a *CategoryAdapter) Rename(ctx context.Context, id int64, name string) error {
	if err := a.service.RenameCategory(ctx, id, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Category %d renamed to %s\n", okMark(), id, name)
	return nil
}

// Move moves a category to a new position.
func (a *CategoryAdapter) Move(ctx context.Context, id int64, ordinal int) error {
	if err := a.service.MoveCategory(ctx, id, ordinal); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Category %d moved to position %d\n", okMark(), id, ordinal)
	return nil
}

// Delete deletes a category; its tags become uncategorized.
func (a *CategoryAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.service.DeleteCategory(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Category %d deleted, its tags are now uncategorized\n", okMark(), id)
	return nil
}

// List lists categories in order.
func (a *CategoryAdapter) List(ctx context.Context) error {
	categories, err := a.service.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%d\t%s\n", c.Ordinal, c.ID, c.Name)
	}
	return w.Flush()
}
