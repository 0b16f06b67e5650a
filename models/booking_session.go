package models

// BookingSession carries the state of a multi-step booking flow between
// requests. The grid stored here is advisory only: confirmation always
// re-validates against current bookings before anything is written.
type BookingSession struct {
	SessionID       string   `json:"sessionId"`
	ProviderID      string   `json:"providerId"`
	ServiceName     string   `json:"serviceName"`
	DurationMinutes int      `json:"durationMinutes"`
	Date            string   `json:"date"`
	Grid            SlotGrid `json:"grid,omitempty"`
}

// ConfirmBookingRequest is the payload for the final booking step.
type ConfirmBookingRequest struct {
	SessionID   string `json:"sessionId" binding:"required"`
	StaffID     string `json:"staffId" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"` // "HH:MM"
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// RescheduleRequest moves an existing booking to a new staff/time.
type RescheduleRequest struct {
	StaffID   string `json:"staffId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
}
