package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/models"
)

func TestValidateCandidateFreeSlot(t *testing.T) {
	idx := BuildBookingIndex([]models.Booking{bookingAt("b1", "asha", "10:00", 30)}, "")

	assert.NoError(t, ValidateCandidate(idx, "asha", 660, 30)) // 11:00, well clear
	assert.NoError(t, ValidateCandidate(idx, "noor", 600, 30)) // other staff
}

func TestValidateCandidateConflict(t *testing.T) {
	idx := BuildBookingIndex([]models.Booking{bookingAt("b1", "asha", "10:00", 30)}, "")

	err := ValidateCandidate(idx, "asha", 600, 30)
	conflict, ok := IsConflict(err)
	require.True(t, ok)
	require.NotNil(t, conflict.Booking)
	assert.Equal(t, "b1", conflict.Booking.ID)
}

func TestValidateCandidateExcludeForReschedule(t *testing.T) {
	booked := []models.Booking{bookingAt("b1", "asha", "10:00", 30)}

	// Without the exclusion the booking conflicts with itself.
	err := ValidateCandidate(BuildBookingIndex(booked, ""), "asha", 615, 30)
	_, ok := IsConflict(err)
	require.True(t, ok)

	// Excluding the booking being moved clears the conflict.
	assert.NoError(t, ValidateCandidate(BuildBookingIndex(booked, "b1"), "asha", 615, 30))
}

func TestValidateCandidateInputErrors(t *testing.T) {
	idx := BuildBookingIndex(nil, "")

	assert.ErrorIs(t, ValidateCandidate(idx, "asha", 600, 0), ErrInvalidDuration)
	assert.ErrorIs(t, ValidateCandidate(idx, "asha", -15, 30), ErrOutOfRange)
	assert.ErrorIs(t, ValidateCandidate(idx, "asha", 1440, 30), ErrOutOfRange)
}
