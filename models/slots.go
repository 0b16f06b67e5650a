package models

// SlotState classifies a (staff, time) cell of the availability grid.
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
	SlotPast      SlotState = "past"
)

// Slot is one per-staff entry of the grid: whether the named staff member can
// take a service of the requested duration starting at Time.
type Slot struct {
	StaffID   string    `json:"staffId"`
	StaffName string    `json:"staffName"`
	Time      string    `json:"time"` // "HH:MM"
	State     SlotState `json:"state"`
	// BookingID references the conflicting booking when State is booked.
	BookingID string `json:"bookingId,omitempty"`
	// ConflictStarted reports whether the conflicting booking is already
	// underway. Display hint only; it does not change bookability.
	ConflictStarted bool `json:"conflictStarted,omitempty"`
}

// SlotGrid groups slots by formatted time of day so the client can present
// "who is available at 10:00" as a unit. An empty grid is a valid result
// meaning no availability, not a fault.
type SlotGrid map[string][]Slot
