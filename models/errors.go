package models

import (
	"errors"
	"fmt"
)

// Error taxonomy for the reservation and folio core. Callers branch with
// errors.Is against the class sentinels; the finer sentinels below wrap
// their class so both checks work.
var (
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("not found")
	ErrPermission        = errors.New("permission denied")
	// ErrPersistence covers lock timeouts and transaction aborts. Safe to
	// retry exactly once: no partial state is ever committed.
	ErrPersistence = errors.New("persistence failure")
)

var (
	ErrInvalidDateRange = fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrUnsettledFolio   = fmt.Errorf("%w: folio balance outstanding", ErrValidation)

	// ErrRoomConflict is returned to the loser of a concurrent overlapping
	// create; the winner's booking is untouched.
	ErrRoomConflict    = fmt.Errorf("%w: room already booked for these dates", ErrConflict)
	ErrRoomUnavailable = fmt.Errorf("%w: room is blocked for maintenance", ErrConflict)

	// Missing and out-of-tenant rows surface identically so tenant
	// existence never leaks across the boundary.
	ErrRoomNotFound    = fmt.Errorf("%w: room", ErrNotFound)
	ErrGuestNotFound   = fmt.Errorf("%w: guest", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("%w: booking", ErrNotFound)
	ErrTaskNotFound    = fmt.Errorf("%w: housekeeping task", ErrNotFound)
)
