package service

import "errors"

// Sentinel and typed errors shared by the services. Handlers translate these
// to status codes; the messages go out verbatim as the {message} body.
var (
	ErrItemNotFound     = errors.New("Food item not found")
	ErrLocationNotFound = errors.New("Storage location not found")

	// ErrBackupUnavailable is returned when no snapshot archive is configured.
	ErrBackupUnavailable = errors.New("snapshot archive is not configured")
)

// ValidationError marks a request that failed field validation (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError is returned when deleting a storage location that food items
// still reference, without the force flag. ItemsCount is the number of
// referencing items, so the caller can re-prompt and retry with force.
type ConflictError struct {
	Message    string
	ItemsCount int
}

func (e *ConflictError) Error() string {
	return e.Message
}
