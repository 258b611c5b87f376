package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
)

// isValidApplicationTransition defines the allowed ledger status changes.
// Applications only ever move out of 'applied'; shortlisted and rejected
// are terminal.
func isValidApplicationTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusApplied:
		return to == models.ApplicationStatusShortlisted || to == models.ApplicationStatusRejected
	case models.ApplicationStatusShortlisted, models.ApplicationStatusRejected:
		return false
	default:
		return false
	}
}

// isNotFound reports whether err is the storage not-found sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
