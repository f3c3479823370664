// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/banban/internal/core/ordinal"
)

// Transactor runs a unit of work atomically.
type Transactor interface {
	// InTx runs fn inside a transaction carried by the context passed to fn.
	// When ctx already carries a transaction, fn joins it. A non-nil error
	// from fn rolls the transaction back.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderedRepository defines the ordering primitives of one orderable table.
// E is the insert payload, K the partition key.
// All methods honour a transaction carried by ctx.
type OrderedRepository[E any, K comparable] interface {
	// Position returns the partition and ordinal of id.
	// Returns an error wrapping ordinal.ErrNotFound when id does not exist.
	Position(ctx context.Context, id int64) (ordinal.Position[K], error)

	// Count returns the number of rows in partition.
	Count(ctx context.Context, partition K) (int, error)

	// ShiftLeft decrements every ordinal > start in partition.
	ShiftLeft(ctx context.Context, partition K, start int) error

	// ShiftRight increments every ordinal >= start in partition.
	ShiftRight(ctx context.Context, partition K, start int) error

	// Insert persists payload at pos and returns the new ID.
	Insert(ctx context.Context, pos ordinal.Position[K], payload E) (int64, error)

	// Delete removes id.
	Delete(ctx context.Context, id int64) error

	// Place sets the partition and ordinal of id.
	Place(ctx context.Context, id int64, pos ordinal.Position[K]) error

	// Rebase moves every row of from into to, offsetting ordinals by offset.
	// Returns the number of rows moved.
	Rebase(ctx context.Context, from, to K, offset int) (int, error)

	// Entries returns the ordering state of every row.
	Entries(ctx context.Context) ([]ordinal.Entry[K], error)
}

// ColumnRepository defines the secondary port for column persistence.
type ColumnRepository interface {
	OrderedRepository[ColumnRecord, ordinal.Board]

	// GetByID retrieves a column by its ID.
	GetByID(ctx context.Context, id int64) (*ColumnRecord, error)

	// List retrieves all columns in board order.
	List(ctx context.Context) ([]*ColumnRecord, error)

	// Rename changes a column's name.
	Rename(ctx context.Context, id int64, name string) error
}

// ColumnRecord represents a column as stored in persistence.
type ColumnRecord struct {
	ID        int64
	Name      string
	Ordinal   int
	CreatedAt string
	UpdatedAt string
}

// ActivityRepository defines the secondary port for activity persistence.
type ActivityRepository interface {
	OrderedRepository[ActivityRecord, ordinal.ParentID]

	// GetByID retrieves an activity by its ID.
	GetByID(ctx context.Context, id int64) (*ActivityRecord, error)

	// List retrieves activities in one partition, ordered by ordinal.
	List(ctx context.Context, column ordinal.ParentID) ([]*ActivityRecord, error)

	// ListAll retrieves every activity ordered by partition then ordinal.
	ListAll(ctx context.Context) ([]*ActivityRecord, error)

	// UpdateContent changes name and body.
	UpdateContent(ctx context.Context, id int64, name, body string) error

	// AddTag attaches a category tag to an activity.
	AddTag(ctx context.Context, activityID, tagID int64) error

	// RemoveTag detaches a category tag from an activity.
	RemoveTag(ctx context.Context, activityID, tagID int64) error

	// TagIDs returns the tag IDs attached to an activity.
	TagIDs(ctx context.Context, activityID int64) ([]int64, error)
}

// ActivityRecord represents an activity as stored in persistence.
type ActivityRecord struct {
	ID        int64
	Name      string
	Body      string // Empty string means null
	ColumnID  ordinal.ParentID
	Ordinal   int
	CreatedAt string
	UpdatedAt string
}

// CategoryRepository defines the secondary port for category persistence.
type CategoryRepository interface {
	OrderedRepository[CategoryRecord, ordinal.Board]

	// GetByID retrieves a category by its ID.
	GetByID(ctx context.Context, id int64) (*CategoryRecord, error)

	// List retrieves all categories in board order.
	List(ctx context.Context) ([]*CategoryRecord, error)

	// Rename changes a category's name.
	Rename(ctx context.Context, id int64, name string) error
}

// CategoryRecord represents a category as stored in persistence.
type CategoryRecord struct {
	ID        int64
	Name      string
	Ordinal   int
	CreatedAt string
	UpdatedAt string
}

// CategoryTagRepository defines the secondary port for category tag persistence.
type CategoryTagRepository interface {
	OrderedRepository[CategoryTagRecord, ordinal.ParentID]

	// GetByID retrieves a tag by its ID.
	GetByID(ctx context.Context, id int64) (*CategoryTagRecord, error)

	// List retrieves tags in one partition, ordered by ordinal.
	List(ctx context.Context, category ordinal.ParentID) ([]*CategoryTagRecord, error)

	// ListAll retrieves every tag ordered by partition then ordinal.
	ListAll(ctx context.Context) ([]*CategoryTagRecord, error)

	// Rename changes a tag's name.
	Rename(ctx context.Context, id int64, name string) error

	// Recolor changes a tag's colour.
	Recolor(ctx context.Context, id int64, color string) error
}

// CategoryTagRecord represents a category tag as stored in persistence.
type CategoryTagRecord struct {
	ID         int64
	Name       string
	CategoryID ordinal.ParentID
	Ordinal    int
	Color      string
	CreatedAt  string
	UpdatedAt  string
}
