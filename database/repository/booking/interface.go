// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConflictGuard re-checks a candidate assignment against the active bookings
// read inside the reservation transaction. Returning an error aborts the
// write, which is what keeps "check conflict" and "commit booking" from being
// separated by another writer.
type ConflictGuard func(active []models.Booking) error

// BookingRepository exposes booking reads plus the transactional write gates
// used for create and reschedule.
type BookingRepository interface {
	ListActiveForDate(providerID, date string) ([]models.Booking, error)
	GetByID(bookingID string) (*models.Booking, error)
	Reserve(ctx context.Context, booking *models.Booking, guard ConflictGuard) error
	Move(ctx context.Context, booking *models.Booking, guard ConflictGuard) error
	Cancel(bookingID string) error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}
