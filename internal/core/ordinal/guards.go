package ordinal

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
// The error wraps ErrInvalidOrdinal.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidOrdinal, r.Reason)
}

// InsertContext provides context for insert guards.
type InsertContext struct {
	Ordinal int
	Count   int // entities currently in the target partition
}

// MoveWithinContext provides context for same-partition move guards.
type MoveWithinContext struct {
	From  int
	To    int
	Count int // entities in the partition, including the moved one
}

// MoveAcrossContext provides context for cross-partition move guards.
type MoveAcrossContext struct {
	To          int
	TargetCount int // entities already in the target partition
}

// CanInsert evaluates whether a new entity can take the given ordinal.
// Rules:
// - Ordinal must be within [0, count]; count appends at the end
func CanInsert(ctx InsertContext) GuardResult {
	if ctx.Ordinal < 0 || ctx.Ordinal > ctx.Count {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("ordinal %d outside [0, %d]", ctx.Ordinal, ctx.Count),
		}
	}
	return GuardResult{Allowed: true}
}

// CanMoveWithin evaluates whether an entity can move to another slot of its
// own partition.
// Rules:
// - Target must be an existing slot, within [0, count-1]
func CanMoveWithin(ctx MoveWithinContext) GuardResult {
	if ctx.To < 0 || ctx.To >= ctx.Count {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("ordinal %d outside [0, %d]", ctx.To, ctx.Count-1),
		}
	}
	return GuardResult{Allowed: true}
}

// CanMoveAcross evaluates whether an entity can enter another partition at
// the given ordinal.
// Rules:
// - Target must be within [0, target count]; target count appends
func CanMoveAcross(ctx MoveAcrossContext) GuardResult {
	if ctx.To < 0 || ctx.To > ctx.TargetCount {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("ordinal %d outside [0, %d]", ctx.To, ctx.TargetCount),
		}
	}
	return GuardResult{Allowed: true}
}
