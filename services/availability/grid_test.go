package availability

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/models"
)

var (
	asha = models.Staff{ID: "asha", ProviderID: "prov-1", Name: "Asha", Active: true}
	noor = models.Staff{ID: "noor", ProviderID: "prov-1", Name: "Noor", Active: true}

	// The day before testDate, so nothing counts as past.
	dayBefore = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
)

func fullDayWindow(staffID string) models.WorkingWindow {
	return models.WorkingWindow{StaffID: staffID, Date: testDate, Start: 540, End: 1020} // 09:00-17:00
}

func sortedKeys(grid models.SlotGrid) []string {
	keys := make([]string, 0, len(grid))
	for k := range grid {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestBuildSlotGridOpenDay(t *testing.T) {
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha},
		Windows:         []models.WorkingWindow{fullDayWindow("asha")},
		Index:           BuildBookingIndex(nil, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)

	keys := sortedKeys(grid)
	require.NotEmpty(t, keys)
	assert.Equal(t, "09:00", keys[0])
	assert.Equal(t, "16:30", keys[len(keys)-1])

	first := grid["09:00"]
	require.Len(t, first, 1)
	assert.Equal(t, "asha", first[0].StaffID)
	assert.Equal(t, "Asha", first[0].StaffName)
	assert.Equal(t, models.SlotAvailable, first[0].State)
}

func TestBuildSlotGridConflictBoundaries(t *testing.T) {
	// Booking 10:00-10:30 plus buffer makes [10:00, 10:35) busy.
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha},
		Windows:         []models.WorkingWindow{fullDayWindow("asha")},
		Index:           BuildBookingIndex([]models.Booking{bookingAt("b1", "asha", "10:00", 30)}, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)

	// 09:30 ends exactly at the busy start: still bookable.
	require.Len(t, grid["09:30"], 1)
	assert.Equal(t, models.SlotAvailable, grid["09:30"][0].State)

	// 09:45 runs into the booking.
	require.Len(t, grid["09:45"], 1)
	assert.Equal(t, models.SlotBooked, grid["09:45"][0].State)
	assert.Equal(t, "b1", grid["09:45"][0].BookingID)

	// 10:30 still collides with the buffered tail [10:30, 10:35).
	require.Len(t, grid["10:30"], 1)
	assert.Equal(t, models.SlotBooked, grid["10:30"][0].State)

	// 10:45 is clear of the buffer.
	require.Len(t, grid["10:45"], 1)
	assert.Equal(t, models.SlotAvailable, grid["10:45"][0].State)
}

func TestBuildSlotGridPastSlotsToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 11, 0, 0, 0, time.Local) // 11:00 on testDate
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha},
		Windows:         []models.WorkingWindow{fullDayWindow("asha")},
		Index:           BuildBookingIndex(nil, ""),
		Now:             now,
	})
	require.NoError(t, err)

	require.Len(t, grid["10:45"], 1)
	assert.Equal(t, models.SlotPast, grid["10:45"][0].State)

	require.Len(t, grid["11:00"], 1)
	assert.Equal(t, models.SlotAvailable, grid["11:00"][0].State)
}

func TestBuildSlotGridConflictStartedFlag(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 15, 0, 0, time.Local)
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha},
		Windows:         []models.WorkingWindow{fullDayWindow("asha")},
		Index:           BuildBookingIndex([]models.Booking{bookingAt("b1", "asha", "10:00", 30)}, ""),
		Now:             now,
	})
	require.NoError(t, err)

	// The conflicting booking started at 10:00, already underway at 10:15.
	require.Len(t, grid["10:15"], 1)
	assert.Equal(t, models.SlotBooked, grid["10:15"][0].State)
	assert.True(t, grid["10:15"][0].ConflictStarted)
}

func TestBuildSlotGridServiceLongerThanEveryWindow(t *testing.T) {
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 240,
		Staff:           []models.Staff{asha},
		Windows:         []models.WorkingWindow{{StaffID: "asha", Date: testDate, Start: 540, End: 660}}, // 2h window
		Index:           BuildBookingIndex(nil, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)
	assert.Empty(t, grid, "too-long service yields no availability, not an error")
}

func TestBuildSlotGridNoWindows(t *testing.T) {
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha},
		Index:           BuildBookingIndex(nil, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestBuildSlotGridInvalidDuration(t *testing.T) {
	for _, d := range []int{0, -15} {
		_, err := BuildSlotGrid(GridInput{
			Date:            testDate,
			DurationMinutes: d,
			Staff:           []models.Staff{asha},
			Windows:         []models.WorkingWindow{fullDayWindow("asha")},
			Index:           BuildBookingIndex(nil, ""),
			Now:             dayBefore,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", d)
	}
}

func TestBuildSlotGridSplitShiftNoDuplicates(t *testing.T) {
	windows := []models.WorkingWindow{
		{StaffID: "asha", Date: testDate, Start: 540, End: 780},  // 09:00-13:00
		{StaffID: "asha", Date: testDate, Start: 720, End: 1020}, // 12:00-17:00, overlaps the first
	}
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha},
		Windows:         windows,
		Index:           BuildBookingIndex(nil, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)

	for key, entries := range grid {
		seen := map[string]bool{}
		for _, slot := range entries {
			require.False(t, seen[slot.StaffID], "staff %s listed twice at %s", slot.StaffID, key)
			seen[slot.StaffID] = true
		}
	}
}

func TestBuildSlotGridSlotsContainedInWindows(t *testing.T) {
	windows := []models.WorkingWindow{
		{StaffID: "asha", Date: testDate, Start: 540, End: 780},
		{StaffID: "noor", Date: testDate, Start: 615, End: 900},
	}
	const duration = 45
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: duration,
		Staff:           []models.Staff{asha, noor},
		Windows:         windows,
		Index:           BuildBookingIndex(nil, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)
	require.NotEmpty(t, grid)

	for key, entries := range grid {
		start, err := ParseTime(key)
		require.NoError(t, err)
		for _, slot := range entries {
			contained := false
			for i := range windows {
				if windows[i].StaffID == slot.StaffID && WindowAdmits(&windows[i], start, duration) {
					contained = true
					break
				}
			}
			assert.True(t, contained, "slot %s/%s overhangs every window", slot.StaffID, key)
		}
	}
}

func TestBuildSlotGridIdempotent(t *testing.T) {
	in := GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha, noor},
		Windows: []models.WorkingWindow{
			fullDayWindow("asha"),
			{StaffID: "noor", Date: testDate, Start: 600, End: 900},
		},
		Index: BuildBookingIndex([]models.Booking{bookingAt("b1", "asha", "10:00", 30)}, ""),
		Now:   dayBefore,
	}

	first, err := BuildSlotGrid(in)
	require.NoError(t, err)
	second, err := BuildSlotGrid(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildSlotGridSkipsInactiveStaff(t *testing.T) {
	gone := models.Staff{ID: "gone", ProviderID: "prov-1", Name: "Gone", Active: false}
	grid, err := BuildSlotGrid(GridInput{
		Date:            testDate,
		DurationMinutes: 30,
		Staff:           []models.Staff{asha, gone},
		Windows:         []models.WorkingWindow{fullDayWindow("asha"), fullDayWindow("gone")},
		Index:           BuildBookingIndex(nil, ""),
		Now:             dayBefore,
	})
	require.NoError(t, err)

	for key, entries := range grid {
		for _, slot := range entries {
			assert.NotEqual(t, "gone", slot.StaffID, "inactive staff listed at %s", key)
		}
	}
}
