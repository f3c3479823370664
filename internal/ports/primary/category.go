package primary

import "context"

// CategoryService defines the primary port for tag category operations.
type CategoryService interface {
	// CreateCategory creates a category, appended unless an ordinal is given.
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)

	// RenameCategory changes a category's name.
	RenameCategory(ctx context.Context, categoryID int64, name string) error

	// MoveCategory moves a category to a new position.
	MoveCategory(ctx context.Context, categoryID int64, ordinal int) error

	// DeleteCategory deletes a category. Its tags become uncategorized.
	DeleteCategory(ctx context.Context, categoryID int64) error

	// ListCategories retrieves all categories in order.
	ListCategories(ctx context.Context) ([]*Category, error)
}

// CreateCategoryRequest contains parameters for creating a category.
type CreateCategoryRequest struct {
	Name    string
	Ordinal *int
}

// Category represents a tag category at the port boundary.
type Category struct {
	ID        int64
	Name      string
	Ordinal   int
	CreatedAt string
	UpdatedAt string
}
