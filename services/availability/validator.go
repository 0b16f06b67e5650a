package availability

import "fmt"

// ValidateCandidate is the final authority before a booking is created or
// moved: it checks the candidate (staff, start, duration) assignment against
// an index freshly built from current bookings. A grid shown to the client
// earlier is advisory only and must never be trusted here.
func ValidateCandidate(idx *BookingIndex, staffID string, startMinute, durationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}
	if startMinute < 0 || startMinute >= MinutesPerDay {
		return fmt.Errorf("%w: %d", ErrOutOfRange, startMinute)
	}
	if conflict := idx.HasConflict(staffID, startMinute, startMinute+durationMinutes); conflict != nil {
		return &ConflictError{Booking: conflict}
	}
	return nil
}
