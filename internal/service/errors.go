package service

import (
	"errors"
	"fmt"

	"github.com/oguzkaya/canteen-server/internal/repository"
)

// Validation error taxonomy. Everything else that comes out of the service is
// a store failure and keeps its wrapped cause.
var (
	// ErrConflict means a uniqueness rule would be violated by the write.
	ErrConflict = errors.New("conflict")
	// ErrReferenceNotFound means a referenced foreign entity does not exist.
	ErrReferenceNotFound = errors.New("reference not found")
)

func conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

func referenceNotFound(entity string) error {
	return fmt.Errorf("%w: %s does not exist", ErrReferenceNotFound, entity)
}

// mapWriteError converts a database-level duplicate into the Conflict taxonomy.
// The pre-insert uniqueness checks are only a soft guard; the unique index is
// what actually holds under concurrent requests.
func mapWriteError(err error, conflictMsg, op string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return conflict(conflictMsg)
	}
	return fmt.Errorf("%s: %w", op, err)
}
