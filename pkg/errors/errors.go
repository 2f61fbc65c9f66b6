package errors

import (
	"errors"
	"fmt"
)

// Domain error taxonomy for the scheduling core. Every operation returns
// either a result or one of these sentinels (possibly wrapped with context);
// callers branch with errors.Is.

var (
	// ErrNotFound indicates a referenced mentor, mentee, session or request is absent
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the actor lacks rights for the requested transition
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition indicates a state machine rule was violated
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrDuplicateRequest indicates a pending request already exists for the pair
	ErrDuplicateRequest = errors.New("duplicate request")

	// ErrSelfRequest indicates mentor and mentee resolve to the same person
	ErrSelfRequest = errors.New("cannot request mentorship from yourself")

	// ErrInvalidInterval indicates a slot whose end does not come after its start
	ErrInvalidInterval = errors.New("end time must be after start time")

	// ErrOutOfAvailability indicates the interval falls outside the mentor's availability rules
	ErrOutOfAvailability = errors.New("outside mentor availability")

	// ErrSlotConflict indicates an overlapping scheduled session already exists
	ErrSlotConflict = errors.New("slot conflict")

	// ErrTooEarly indicates feedback was submitted before the session ended
	ErrTooEarly = errors.New("session has not ended yet")

	// ErrInvalidRating indicates a rating outside the 1-5 range
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInfrastructure indicates a persistence or transport failure.
	// Unlike the domain errors above, callers may retry these.
	ErrInfrastructure = errors.New("infrastructure failure")
)

// NotFoundError creates a not found error naming the missing resource
func NotFoundError(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

// ForbiddenError creates a forbidden error with context
func ForbiddenError(reason string) error {
	if reason != "" {
		return fmt.Errorf("%s: %w", reason, ErrForbidden)
	}
	return ErrForbidden
}

// InvalidTransitionError creates an invalid transition error naming both states
func InvalidTransitionError(from, to string) error {
	return fmt.Errorf("cannot transition from '%s' to '%s': %w", from, to, ErrInvalidTransition)
}

// InfrastructureError wraps a persistence-layer failure so domain callers can
// distinguish it from the taxonomy above
func InfrastructureError(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrInfrastructure)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
