// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

// ListActiveForDate retrieves the bookings that count toward conflicts for a
// provider date. Cancelled bookings are excluded in the query itself.
func (repo *MongoBookingRepo) ListActiveForDate(providerID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for provider %s on %s: %w", providerID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings for provider %s: %w", providerID, err)
	}
	return bookings, nil
}

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s not found", bookingID)
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &b, nil
}

// Reserve inserts a booking inside a Mongo transaction, running the conflict
// guard against the active bookings read in the same transaction. The guard's
// error aborts the insert and propagates unwrapped so callers can recognize a
// slot conflict.
func (repo *MongoBookingRepo) Reserve(ctx context.Context, booking *models.Booking, guard ConflictGuard) error {
	return repo.withGuardedTxn(ctx, booking, guard, func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// Move updates an existing booking's staff/time assignment inside a Mongo
// transaction, with the same guarded re-check as Reserve. The booking being
// moved is excluded from the guard's snapshot by ID.
func (repo *MongoBookingRepo) Move(ctx context.Context, booking *models.Booking, guard ConflictGuard) error {
	return repo.withGuardedTxn(ctx, booking, guard, func(sc mongo.SessionContext) error {
		filter := bson.M{"id": booking.ID, "status": models.BookingStatusActive}
		update := bson.M{"$set": bson.M{
			"staffId":   booking.StaffID,
			"date":      booking.Date,
			"startAt":   booking.StartAt,
			"endAt":     booking.EndAt,
			"updatedAt": booking.UpdatedAt,
		}}
		res, err := repo.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("update booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("no active booking with id %s", booking.ID)
		}
		return nil
	})
}

// withGuardedTxn reads the provider's active bookings for the target date,
// applies the guard, and runs the write, all inside one session transaction.
func (repo *MongoBookingRepo) withGuardedTxn(ctx context.Context, booking *models.Booking, guard ConflictGuard, write func(sc mongo.SessionContext) error) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"providerId": booking.ProviderID,
			"date":       booking.Date,
			"status":     bson.M{"$ne": models.BookingStatusCancelled},
			"id":         bson.M{"$ne": booking.ID},
		}
		cursor, err := repo.bookingColl.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("error reading active bookings: %w", err)
		}
		var active []models.Booking
		if err := cursor.All(sc, &active); err != nil {
			return fmt.Errorf("error decoding active bookings: %w", err)
		}
		if err := guard(active); err != nil {
			return err
		}
		return write(sc)
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// Cancel marks a booking cancelled. Cancelled bookings stop counting toward
// availability immediately; the next grid computation simply no longer sees
// them.
func (repo *MongoBookingRepo) Cancel(bookingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusCancelled,
		"updatedAt": time.Now(),
	}}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}
