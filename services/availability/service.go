package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/utils"
)

// ComputeAvailability fetches the provider's staff, windows, and active
// bookings for the date and builds the slot grid. An empty grid is a valid
// "no availability" result, distinct from a fetch failure.
func (svc *DefaultAvailabilityService) ComputeAvailability(ctx context.Context, providerID, date string, durationMinutes int) (models.SlotGrid, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}
	logger := utils.GetLogger()

	windows, err := svc.ScheduleRepo.ListWindowsForDate(providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch working windows: %w", err)
	}
	staff, err := svc.ScheduleRepo.ListStaff(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	bookings, err := svc.BookingRepo.ListActiveForDate(providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	grid, err := BuildSlotGrid(GridInput{
		Date:            date,
		DurationMinutes: durationMinutes,
		Staff:           staff,
		Windows:         windows,
		Index:           BuildBookingIndex(bookings, ""),
		Now:             svc.now(),
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("computed availability grid",
		zap.String("providerID", providerID),
		zap.String("date", date),
		zap.Int("durationMinutes", durationMinutes),
		zap.Int("timeKeys", len(grid)))
	return grid, nil
}

// ValidateAndReserve is the atomic gate between "the client picked a slot"
// and "the booking exists". The conflict re-check runs inside the booking
// repository's transaction, against bookings read in that same transaction,
// so a grid displayed minutes ago can never authorize a double-booking.
func (svc *DefaultAvailabilityService) ValidateAndReserve(ctx context.Context, req ReserveRequest) (*models.Booking, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, req.DurationMinutes)
	}
	if req.StartMinute < 0 || req.StartMinute+req.DurationMinutes > MinutesPerDay {
		return nil, fmt.Errorf("%w: start %d duration %d", ErrOutOfRange, req.StartMinute, req.DurationMinutes)
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, svc.now().Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, req.Date)
	}
	startAt := day.Add(time.Duration(req.StartMinute) * time.Minute)
	endAt := startAt.Add(time.Duration(req.DurationMinutes) * time.Minute)

	guard := func(active []models.Booking) error {
		idx := BuildBookingIndex(active, req.ExcludeBookingID)
		return ValidateCandidate(idx, req.StaffID, req.StartMinute, req.DurationMinutes)
	}

	now := svc.now()
	if req.ExcludeBookingID != "" {
		existing, err := svc.BookingRepo.GetByID(req.ExcludeBookingID)
		if err != nil {
			return nil, err
		}
		existing.StaffID = req.StaffID
		existing.Date = req.Date
		existing.StartAt = startAt
		existing.EndAt = endAt
		existing.UpdatedAt = now
		if err := svc.BookingRepo.Move(ctx, existing, guard); err != nil {
			return nil, err
		}
		return existing, nil
	}

	booking := &models.Booking{
		ID:                     uuid.New().String(),
		ProviderID:             req.ProviderID,
		StaffID:                req.StaffID,
		ServiceName:            req.ServiceName,
		ServiceDurationMinutes: req.DurationMinutes,
		Date:                   req.Date,
		StartAt:                startAt,
		EndAt:                  endAt,
		Status:                 models.BookingStatusActive,
		ClientName:             req.ClientName,
		ClientPhone:            req.ClientPhone,
		CreatedAt:              now,
	}
	if err := svc.BookingRepo.Reserve(ctx, booking, guard); err != nil {
		return nil, err
	}
	return booking, nil
}

func (svc *DefaultAvailabilityService) now() time.Time {
	if svc.Clock != nil {
		return svc.Clock()
	}
	return time.Now()
}
