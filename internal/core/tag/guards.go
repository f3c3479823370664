package tag

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalid matches every error returned by GuardResult.Error via errors.Is.
var ErrInvalid = errors.New("invalid tag")

// guardError carries a rejection reason as its message.
type guardError struct {
	reason string
}

func (e *guardError) Error() string {
	return e.reason
}

// Is reports ErrInvalid as a match.
func (e *guardError) Is(target error) bool {
	return target == ErrInvalid
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
// The error matches ErrInvalid.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return &guardError{reason: r.Reason}
}

// NameContext provides context for tag naming guards.
type NameContext struct {
	Name string
}

// ColorContext provides context for recolor guards.
type ColorContext struct {
	Color string
}

// CanUseName evaluates whether a tag can carry the given name.
// Rules:
// - Name must not be blank
// - Name must fit MaxNameLength characters
func CanUseName(ctx NameContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "tag name cannot be empty"}
	}
	if n := utf8.RuneCountInString(ctx.Name); n > MaxNameLength {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("tag name is %d characters, maximum is %d", n, MaxNameLength),
		}
	}
	return GuardResult{Allowed: true}
}

// CanUseColor evaluates whether a colour is acceptable.
// Rules:
// - Colour must be six hex digits
func CanUseColor(ctx ColorContext) GuardResult {
	if !ValidColor(ctx.Color) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("color %q must be six hex digits", ctx.Color),
		}
	}
	return GuardResult{Allowed: true}
}
