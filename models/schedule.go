package models

// WorkingWindow is a contiguous range of minutes-from-midnight in which a staff
// member is nominally schedulable on a given date. A staff member may have more
// than one window per date (e.g., a split shift around a lunch break).
type WorkingWindow struct {
	StaffID string `bson:"staffId" json:"staffId"`
	Date    string `bson:"date" json:"date"` // e.g., "2026-08-31"
	Start   int    `bson:"start" json:"start"`
	End     int    `bson:"end" json:"end"`
	// NextAvailableFrom pushes the effective start forward for the current day
	// ("free starting now"). Zero means the configured start applies as-is.
	// Resolved upstream by the provider's slot manager, passed through here.
	NextAvailableFrom int `bson:"nextAvailableFrom,omitempty" json:"nextAvailableFrom,omitempty"`
}

// DaySchedule is the slot-manager view of one provider date: every staff
// member's windows for that date.
type DaySchedule struct {
	ProviderID string          `bson:"providerId" json:"providerId"`
	Date       string          `bson:"date" json:"date"`
	Windows    []WorkingWindow `bson:"windows" json:"windows"`
}

// SetScheduleRequest defines the payload for replacing a provider's windows for a date.
type SetScheduleRequest struct {
	Date    string          `json:"date" binding:"required"`
	Windows []WorkingWindow `json:"windows" binding:"required"`
}
