// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository exposes the read/write contracts for staff rosters and
// per-date working windows.
type ScheduleRepository interface {
	ListWindowsForDate(providerID, date string) ([]models.WorkingWindow, error)
	ReplaceWindowsForDate(providerID, date string, windows []models.WorkingWindow) error
	ListStaff(providerID string) ([]models.Staff, error)
	GetStaff(providerID, staffID string) (*models.Staff, error)
}

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	scheduleColl *mongo.Collection
	staffColl    *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &MongoScheduleRepo{
		scheduleColl: db.Collection("schedules"),
		staffColl:    db.Collection("staff"),
	}
}
