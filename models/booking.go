package models

import "time"

// Booking statuses. Only active bookings count toward availability conflicts.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a confirmed appointment for a provider.
// StaffID may be empty while the assignment is not finalized; such bookings are
// still tracked for global conflict awareness under the unassigned bucket.
type Booking struct {
	ID                     string    `bson:"id" json:"id"`
	ProviderID             string    `bson:"providerId" json:"providerId"`
	StaffID                string    `bson:"staffId,omitempty" json:"staffId,omitempty"`
	ServiceName            string    `bson:"serviceName" json:"serviceName"`
	ServiceDurationMinutes int       `bson:"serviceDurationMinutes" json:"serviceDurationMinutes"`
	Date                   string    `bson:"date" json:"date"` // e.g., "2026-08-31"
	StartAt                time.Time `bson:"startAt" json:"startAt"`
	// EndAt is the explicit appointment end when the provider recorded one;
	// zero means the end is implied by the service duration.
	EndAt       time.Time `bson:"endAt,omitempty" json:"endAt,omitempty"`
	Status      string    `bson:"status" json:"status"`
	ClientName  string    `bson:"clientName,omitempty" json:"clientName,omitempty"`
	ClientPhone string    `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
