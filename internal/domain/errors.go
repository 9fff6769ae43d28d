package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap this error so callers can
	// check for the generic condition with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., two tasks with the same ID on one pet).
	ErrDuplicate = errors.New("entity already exists")

	// ErrPetNotFound indicates that the requested pet does not exist on the owner.
	ErrPetNotFound = fmt.Errorf("%w: pet", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist on any pet.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrDuplicateTask indicates that a task with the same ID already exists on the pet.
	ErrDuplicateTask = fmt.Errorf("%w: task", ErrDuplicate)

	// ErrDuplicatePet indicates that a pet with the same name already belongs to the owner.
	ErrDuplicatePet = fmt.Errorf("%w: pet", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
