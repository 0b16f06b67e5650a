package models

// Staff represents a bookable staff member of a provider (stylist, barber, technician).
type Staff struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	Name       string `bson:"name" json:"name"`
	Role       string `bson:"role,omitempty" json:"role,omitempty"` // e.g., "stylist", "nail technician"
	Active     bool   `bson:"active" json:"active"`
}
