package availability

import (
	"sort"
	"time"

	"salonbook/models"
)

const (
	// BufferMinutes is the fixed clean-up/transition padding applied after
	// every booking's end before the next booking may start. Uniform across
	// providers for now; a candidate for provider-level config later.
	BufferMinutes = 5

	// DefaultServiceDurationMinutes is assumed when a booking carries neither
	// an explicit end time nor a service duration.
	DefaultServiceDurationMinutes = 30

	// UnassignedStaffKey buckets bookings whose staff assignment is not yet
	// finalized. Tracked for global conflict awareness only; slot generation
	// never iterates this bucket.
	UnassignedStaffKey = "unassigned"
)

// BusyInterval is one buffered [Start, End) occupied range for a staff member.
type BusyInterval struct {
	Start   int
	End     int
	Booking *models.Booking
}

// BookingIndex maps staffID to that staff member's busy intervals for one
// provider date, sorted by start. It is rebuilt from a fresh booking snapshot
// on every query; never cached across calls.
type BookingIndex struct {
	byStaff map[string][]BusyInterval
}

// BuildBookingIndex folds a flat booking collection into per-staff busy
// intervals with the buffer already applied to each end. Cancelled bookings
// and the booking identified by excludeID (the one being rescheduled) are
// skipped. Cross-midnight appointments are out of scope: minute-of-day values
// come from the timestamps' local hour and minute.
func BuildBookingIndex(bookings []models.Booking, excludeID string) *BookingIndex {
	idx := &BookingIndex{byStaff: make(map[string][]BusyInterval)}

	for i := range bookings {
		b := &bookings[i]
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}

		start := minuteOfDay(b.StartAt)
		dur := b.ServiceDurationMinutes
		if dur <= 0 {
			dur = DefaultServiceDurationMinutes
		}
		end := start + dur
		if !b.EndAt.IsZero() {
			if explicit := minuteOfDay(b.EndAt); explicit > end {
				end = explicit
			}
		}

		key := b.StaffID
		if key == "" {
			key = UnassignedStaffKey
		}
		idx.byStaff[key] = append(idx.byStaff[key], BusyInterval{
			Start:   start,
			End:     end + BufferMinutes,
			Booking: b,
		})
	}

	for key := range idx.byStaff {
		ivs := idx.byStaff[key]
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
	}
	return idx
}

// HasConflict returns the first booking whose buffered busy interval overlaps
// the proposed [start, end), or nil. Linear scan with an early exit on the
// sorted list; per-day booking volumes keep this cheap.
func (idx *BookingIndex) HasConflict(staffID string, start, end int) *models.Booking {
	for _, iv := range idx.byStaff[staffID] {
		if iv.Start >= end {
			break
		}
		if IntervalsOverlap(start, end, iv.Start, iv.End) {
			return iv.Booking
		}
	}
	return nil
}

// Busy returns the busy intervals recorded for a staff member.
func (idx *BookingIndex) Busy(staffID string) []BusyInterval {
	return idx.byStaff[staffID]
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
