package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"
)

// SetScheduleHandler replaces a provider's working windows for one date.
// PUT /api/providers/:providerID/schedule
func (h *AvailabilityHandler) SetScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	var req models.SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}
	for _, w := range req.Windows {
		if w.Start < 0 || w.End > availability.MinutesPerDay || w.Start >= w.End {
			utils.JSONError(c, http.StatusBadRequest, "invalid window",
				"window start must precede end, within a single day")
			return
		}
	}

	if err := h.ScheduleRepo.ReplaceWindowsForDate(providerID, req.Date, req.Windows); err != nil {
		h.Logger.Error("failed to replace schedule",
			zap.String("providerID", providerID), zap.String("date", req.Date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save schedule", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerId": providerID, "date": req.Date, "windows": req.Windows})
}

// GetScheduleHandler returns a provider's working windows for one date.
// GET /api/providers/:providerID/schedule?date=2006-01-02
func (h *AvailabilityHandler) GetScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	windows, err := h.ScheduleRepo.ListWindowsForDate(providerID, date)
	if err != nil {
		h.Logger.Error("failed to fetch schedule",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch schedule", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerId": providerID, "date": date, "windows": windows})
}

// GetStaffHandler returns a provider's active staff roster.
// GET /api/providers/:providerID/staff
func (h *AvailabilityHandler) GetStaffHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	staff, err := h.ScheduleRepo.ListStaff(providerID)
	if err != nil {
		h.Logger.Error("failed to fetch staff", zap.String("providerID", providerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch staff", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerId": providerID, "staff": staff})
}
