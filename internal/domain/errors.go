// Package domain contains the core baby-care records and the repository ports
// the storage adapters implement.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate indicates a date that is not a real calendar day in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format. Use YYYY-MM-DD")
	// ErrInvalidAmount indicates a feeding volume that is negative or not finite.
	ErrInvalidAmount = errors.New("amount must be a finite, non-negative number")
	// ErrNotFound indicates that no record matches the requested id or date.
	ErrNotFound = errors.New("not found")
	// ErrStorage is matched by every StorageError.
	ErrStorage = errors.New("storage fault")
)

// StorageError wraps a failure of the underlying persistence layer.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err for operation op. It returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports ErrStorage as a match so callers need not know the concrete type.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }
