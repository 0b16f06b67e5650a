package availability

import (
	"fmt"
	"time"

	"salonbook/models"
)

// GridInput is the snapshot a grid computation runs over. Everything is
// fetched by the caller immediately before use; the computation itself is
// pure, so concurrent request handlers can share nothing and race on nothing.
type GridInput struct {
	Date            string // "2006-01-02"
	DurationMinutes int
	Staff           []models.Staff
	Windows         []models.WorkingWindow
	Index           *BookingIndex
	Now             time.Time
}

// BuildSlotGrid walks the time axis between the resolved bounds in fixed
// steps and classifies every (time, staff) cell as available, booked, or
// past. Cells are independent; the only cross-cell rule is that a staff
// member with several windows appears at most once per time key.
func BuildSlotGrid(in GridInput) (models.SlotGrid, error) {
	if in.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, in.DurationMinutes)
	}

	grid := models.SlotGrid{}
	bounds, ok := ResolveBounds(in.Windows)
	if !ok {
		return grid, nil
	}

	windowsByStaff := make(map[string][]models.WorkingWindow, len(in.Staff))
	for _, w := range in.Windows {
		windowsByStaff[w.StaffID] = append(windowsByStaff[w.StaffID], w)
	}

	today := in.Date == in.Now.Format("2006-01-02")
	nowMinute := minuteOfDay(in.Now)

	for t := bounds.Earliest; t+in.DurationMinutes <= bounds.Latest; t += SlotIntervalMinutes {
		key, err := FormatTime(t)
		if err != nil {
			return nil, err
		}

		var entries []models.Slot
		for _, st := range in.Staff {
			if !st.Active {
				continue
			}
			placed := false
			for i := range windowsByStaff[st.ID] {
				w := &windowsByStaff[st.ID][i]
				if placed || !WindowAdmits(w, t, in.DurationMinutes) {
					continue
				}
				placed = true

				slot := models.Slot{StaffID: st.ID, StaffName: st.Name, Time: key}
				switch conflict := in.Index.HasConflict(st.ID, t, t+in.DurationMinutes); {
				case conflict != nil:
					slot.State = models.SlotBooked
					slot.BookingID = conflict.ID
					slot.ConflictStarted = today && minuteOfDay(conflict.StartAt) < nowMinute
				case today && t < nowMinute:
					slot.State = models.SlotPast
				default:
					slot.State = models.SlotAvailable
				}
				entries = append(entries, slot)
			}
		}
		if len(entries) > 0 {
			grid[key] = entries
		}
	}
	return grid, nil
}
