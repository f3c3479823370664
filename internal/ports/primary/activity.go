package primary

import (
	"context"

	"github.com/example/banban/internal/core/ordinal"
)

// ActivityService defines the primary port for activity operations.
type ActivityService interface {
	// CreateActivity creates an activity in a column or the stash.
	CreateActivity(ctx context.Context, req CreateActivityRequest) (*Activity, error)

	// GetActivity retrieves an activity by ID, with its tags.
	GetActivity(ctx context.Context, activityID int64) (*Activity, error)

	// UpdateActivity changes an activity's name and body.
	UpdateActivity(ctx context.Context, req UpdateActivityRequest) error

	// MoveActivity moves an activity within its column or to another one.
	MoveActivity(ctx context.Context, req MoveRequest) error

	// DeleteActivity deletes an activity.
	DeleteActivity(ctx context.Context, activityID int64) error

	// ListActivities retrieves the activities of one column, or the stash.
	ListActivities(ctx context.Context, column ordinal.ParentID) ([]*Activity, error)

	// AddTag attaches a tag to an activity.
	AddTag(ctx context.Context, activityID, tagID int64) error

	// RemoveTag detaches a tag from an activity.
	RemoveTag(ctx context.Context, activityID, tagID int64) error
}

// CreateActivityRequest contains parameters for creating an activity.
type CreateActivityRequest struct {
	Name     string
	Body     string
	ColumnID ordinal.ParentID // NoParent is the stash
	Ordinal  *int             // nil appends
}

// UpdateActivityRequest contains parameters for updating an activity.
type UpdateActivityRequest struct {
	ActivityID int64
	Name       string
	Body       string
}

// MoveRequest moves an item of a parented collection.
// A nil Partition keeps the current one; a nil Ordinal means the end.
type MoveRequest struct {
	ID        int64
	Partition *ordinal.ParentID
	Ordinal   *int
}

// Activity represents an activity at the port boundary.
type Activity struct {
	ID        int64
	Name      string
	Body      string
	ColumnID  ordinal.ParentID
	Ordinal   int
	TagIDs    []int64
	CreatedAt string
	UpdatedAt string
}
