package availability

import "salonbook/models"

// SlotIntervalMinutes is the fixed step of the slot grid.
const SlotIntervalMinutes = 15

// GridBounds is the global [Earliest, Latest] range driving grid generation.
type GridBounds struct {
	Earliest int
	Latest   int
}

// ResolveBounds merges every staff member's working windows for the date into
// the overall range for slot generation. Earliest is the minimum effective
// window start rounded down to a slot-interval boundary; Latest is the maximum
// window end. ok is false when there are no windows, in which case the grid
// must come out empty (a valid no-availability result, not an error).
func ResolveBounds(windows []models.WorkingWindow) (GridBounds, bool) {
	if len(windows) == 0 {
		return GridBounds{}, false
	}
	b := GridBounds{Earliest: MinutesPerDay, Latest: 0}
	for i := range windows {
		start := effectiveStart(&windows[i])
		if start < b.Earliest {
			b.Earliest = start
		}
		if windows[i].End > b.Latest {
			b.Latest = windows[i].End
		}
	}
	b.Earliest -= b.Earliest % SlotIntervalMinutes
	return b, true
}

// WindowAdmits reports whether a window can hold a service of duration d
// starting at t: the whole [t, t+d) range must fit inside the window, with
// the effective start honoring any "free starting now" adjustment.
func WindowAdmits(w *models.WorkingWindow, t, d int) bool {
	return t >= effectiveStart(w) && t+d <= w.End
}

// effectiveStart is the later of the configured start and the
// NextAvailableFrom hint resolved upstream for the current day.
func effectiveStart(w *models.WorkingWindow) int {
	if w.NextAvailableFrom > w.Start {
		return w.NextAvailableFrom
	}
	return w.Start
}
