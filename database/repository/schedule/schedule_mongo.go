// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonbook/models"
)

// ListWindowsForDate retrieves every staff member's working windows for the
// given provider date. A provider with no schedule document simply has no
// windows; that is not an error.
func (repo *MongoScheduleRepo) ListWindowsForDate(providerID, date string) ([]models.WorkingWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var day models.DaySchedule
	filter := bson.M{"providerId": providerID, "date": date}
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule for provider %s on %s: %w", providerID, date, err)
	}
	return day.Windows, nil
}

// ReplaceWindowsForDate overwrites the provider's windows for one date.
// Used by the provider's slot-manager tools.
func (repo *MongoScheduleRepo) ReplaceWindowsForDate(providerID, date string, windows []models.WorkingWindow) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	day := models.DaySchedule{ProviderID: providerID, Date: date, Windows: windows}
	filter := bson.M{"providerId": providerID, "date": date}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.scheduleColl.ReplaceOne(ctx, filter, day, opts); err != nil {
		return fmt.Errorf("error replacing schedule for provider %s on %s: %w", providerID, date, err)
	}
	return nil
}

// ListStaff retrieves the provider's active staff roster.
func (repo *MongoScheduleRepo) ListStaff(providerID string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID, "active": true}
	cursor, err := repo.staffColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff for provider %s: %w", providerID, err)
	}
	return staff, nil
}

// GetStaff retrieves a single staff member by ID.
func (repo *MongoScheduleRepo) GetStaff(providerID, staffID string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var st models.Staff
	filter := bson.M{"providerId": providerID, "id": staffID}
	if err := repo.staffColl.FindOne(ctx, filter).Decode(&st); err != nil {
		return nil, fmt.Errorf("error fetching staff %s for provider %s: %w", staffID, providerID, err)
	}
	return &st, nil
}
