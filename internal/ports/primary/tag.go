package primary

import (
	"context"

	"github.com/example/banban/internal/core/ordinal"
)

// TagService defines the primary port for category tag operations.
type TagService interface {
	// CreateTag creates a tag. An empty colour is derived from the name.
	CreateTag(ctx context.Context, req CreateTagRequest) (*Tag, error)

	// GetTag retrieves a tag by ID.
	GetTag(ctx context.Context, tagID int64) (*Tag, error)

	// RenameTag changes a tag's name.
	RenameTag(ctx context.Context, tagID int64, name string) error

	// RecolorTag changes a tag's colour.
	RecolorTag(ctx context.Context, tagID int64, color string) error

	// MoveTag moves a tag within its category or to another one.
	MoveTag(ctx context.Context, req MoveRequest) error

	// DeleteTag deletes a tag and detaches it from every activity.
	DeleteTag(ctx context.Context, tagID int64) error

	// ListTags retrieves the tags of one category, or the uncategorized tags.
	ListTags(ctx context.Context, category ordinal.ParentID) ([]*Tag, error)
}

// CreateTagRequest contains parameters for creating a tag.
type CreateTagRequest struct {
	Name       string
	CategoryID ordinal.ParentID // NoParent is uncategorized
	Color      string
	Ordinal    *int
}

// Tag represents a category tag at the port boundary.
type Tag struct {
	ID         int64
	Name       string
	CategoryID ordinal.ParentID
	Ordinal    int
	Color      string
	CreatedAt  string
	UpdatedAt  string
}
