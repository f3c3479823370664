// Package ordinal contains the pure types and rules of positional ordering.
//
// Every orderable collection on the board (activities in a column, tags in a
// category, categories and columns on the board) is scoped to a partition and
// carries a zero-based ordinal. Within a partition the ordinals are always
// exactly 0..n-1. This package holds the partition key types, the error
// taxonomy, the guards that validate requested positions and the checker
// that reports invariant violations. It has no dependencies on storage.
package ordinal

import (
	"fmt"
	"strconv"
)

// ParentID is a nullable partition key. The zero value is NoParent, which is
// a partition of its own ("stash" for activities, "uncategorized" for tags).
// Two keys are equal when both are NoParent or both reference the same ID.
type ParentID struct {
	ID    int64
	Valid bool
}

// NoParent is the fallback partition.
var NoParent = ParentID{}

// Parent returns the key of the partition owned by id.
func Parent(id int64) ParentID {
	return ParentID{ID: id, Valid: true}
}

// String renders the key for logs and CLI output.
func (p ParentID) String() string {
	if !p.Valid {
		return "none"
	}
	return strconv.FormatInt(p.ID, 10)
}

// Board is the key of collections that have a single global partition.
type Board struct{}

// String renders the key for logs and CLI output.
func (Board) String() string {
	return "board"
}

// Position locates an entity inside its partition.
type Position[K comparable] struct {
	Partition K
	Ordinal   int
}

// String renders the position as partition/ordinal.
func (p Position[K]) String() string {
	return fmt.Sprintf("%v/%d", p.Partition, p.Ordinal)
}

// Entry is the ordering state of a single entity.
type Entry[K comparable] struct {
	ID int64
	Position[K]
}
