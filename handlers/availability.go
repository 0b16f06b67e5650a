package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	scheduleRepo "salonbook/database/repository/schedule"
	"salonbook/services/availability"
	"salonbook/utils"
)

// AvailabilityHandler serves the slot grid and the provider's slot-manager tools.
type AvailabilityHandler struct {
	Service      availability.AvailabilityService
	ScheduleRepo scheduleRepo.ScheduleRepository
	Logger       *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, repo scheduleRepo.ScheduleRepository, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, ScheduleRepo: repo, Logger: logger}
}

// GetAvailabilityHandler computes the slot grid for a provider date.
// GET /api/providers/:providerID/availability?date=2006-01-02&duration=30
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be an integer number of minutes")
		return
	}

	grid, err := h.Service.ComputeAvailability(c.Request.Context(), providerID, date, duration)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
			return
		}
		h.Logger.Error("failed to compute availability",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}

	// An empty grid means no availability, which is a successful outcome.
	c.JSON(http.StatusOK, gin.H{
		"providerId": providerID,
		"date":       date,
		"duration":   duration,
		"slots":      grid,
	})
}
