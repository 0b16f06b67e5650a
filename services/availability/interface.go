package availability

import (
	"context"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	scheduleRepo "salonbook/database/repository/schedule"

	"salonbook/models"
)

// ReserveRequest is a candidate (staff, start, duration) assignment submitted
// for the final conflict check before a booking write. ExcludeBookingID is set
// during reschedule so the booking being moved does not conflict with itself.
type ReserveRequest struct {
	ProviderID       string
	StaffID          string
	Date             string // "2006-01-02"
	StartMinute      int
	DurationMinutes  int
	ServiceName      string
	ClientName       string
	ClientPhone      string
	ExcludeBookingID string
}

// AvailabilityService is the single shared engine behind the client booking
// flow, the reschedule flow, and the provider's slot-management tools.
type AvailabilityService interface {
	// ComputeAvailability recomputes the slot grid for a provider date from a
	// fresh snapshot of schedules and bookings. The result is disposable and
	// advisory; it is never cached.
	ComputeAvailability(ctx context.Context, providerID, date string, durationMinutes int) (models.SlotGrid, error)
	// ValidateAndReserve re-checks the candidate against current bookings and,
	// only if free, writes the booking (create or reschedule) inside the same
	// transaction as the check. Returns *ConflictError when the slot is taken.
	ValidateAndReserve(ctx context.Context, req ReserveRequest) (*models.Booking, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	// Clock returns the current wall-clock time; overridable in tests.
	Clock func() time.Time
}
