package primary

import (
	"context"

	"github.com/example/banban/internal/core/ordinal"
)

// BoardService defines the primary port for whole-board operations.
type BoardService interface {
	// Snapshot loads the full board in display order.
	Snapshot(ctx context.Context) (*Board, error)

	// Check reports ordinal violations in every collection.
	Check(ctx context.Context) (*CheckReport, error)

	// Repair renumbers every collection densely in one transaction.
	Repair(ctx context.Context) (*RepairReport, error)
}

// Board is a snapshot of every collection.
type Board struct {
	Columns       []*ColumnActivities
	Stash         []*Activity
	Categories    []*CategoryTags
	Uncategorized []*Tag
}

// ColumnActivities is a column with its activities in order.
type ColumnActivities struct {
	Column     *Column
	Activities []*Activity
}

// CategoryTags is a category with its tags in order.
type CategoryTags struct {
	Category *Category
	Tags     []*Tag
}

// CheckReport lists the violations found per collection.
type CheckReport struct {
	Collections []CollectionCheck
}

// CollectionCheck is the check result of one collection.
type CollectionCheck struct {
	Name       string
	Violations []ordinal.Violation
}

// OK reports whether no collection has violations.
func (r *CheckReport) OK() bool {
	for _, c := range r.Collections {
		if len(c.Violations) > 0 {
			return false
		}
	}
	return true
}

// RepairReport lists how many rows were renumbered per collection.
type RepairReport struct {
	Collections []CollectionRepair
}

// CollectionRepair is the repair result of one collection.
type CollectionRepair struct {
	Name       string
	Renumbered int
}

// Total returns the number of rows renumbered across collections.
func (r *RepairReport) Total() int {
	n := 0
	for _, c := range r.Collections {
		n += c.Renumbered
	}
	return n
}
