package ordinal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOrdinal is returned when a requested ordinal is outside the
	// range the operation accepts.
	ErrInvalidOrdinal = errors.New("invalid ordinal")

	// ErrStorage matches every *StorageError via errors.Is.
	ErrStorage = errors.New("storage failure")
)

// StorageError wraps a failure reported by the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the driver error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage as a match so callers need not know the concrete type.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Storage wraps err as a StorageError for op. A nil err stays nil and an
// error that already is a StorageError is returned unchanged.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// NotFound builds the not-found error for an entity kind and id.
func NotFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
