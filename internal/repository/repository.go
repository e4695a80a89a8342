package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (memory, postgres) inside this directory.

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by any backend when an identifier is unknown.
var ErrNotFound = errors.New("record not found")

// InUseError is returned by LocationRepository.Delete when the location is
// referenced by food items and force was not set. ItemsCount is the exact
// number of referencing items at the time of the check.
type InUseError struct {
	ItemsCount int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("storage location is referenced by %d food items", e.ItemsCount)
}
