package availability

import (
	"errors"
	"fmt"

	"salonbook/models"
)

var (
	// ErrInvalidFormat reports a time string that is not 24-hour "HH:MM".
	ErrInvalidFormat = errors.New("invalid time format")
	// ErrOutOfRange reports a minute-of-day value outside [0, 1440).
	ErrOutOfRange = errors.New("minute of day out of range")
	// ErrInvalidDuration reports a non-positive service duration.
	ErrInvalidDuration = errors.New("service duration must be positive")
)

// ConflictError is returned when a candidate staff/time is no longer free.
// It is an expected, user-recoverable outcome: callers must surface "slot no
// longer available, please choose another time" and never silently substitute
// a different slot.
type ConflictError struct {
	Booking *models.Booking
}

func (e *ConflictError) Error() string {
	if e.Booking != nil {
		return fmt.Sprintf("slot conflict with booking %s", e.Booking.ID)
	}
	return "slot conflict"
}

// IsConflict reports whether err is a slot conflict and returns it if so.
func IsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
