package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"
)

const (
	sessionKeyPrefix = "bookingSession:"
	sessionTTL       = 10 * time.Minute
)

// BookingHandler drives the multi-step client booking flow and the
// reschedule/cancel endpoints. Session state lives in Redis; the grid inside
// a session is advisory and every confirm re-validates through the engine.
type BookingHandler struct {
	Service     availability.AvailabilityService
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client
	Logger      *zap.Logger
}

func NewBookingHandler(svc availability.AvailabilityService, repo bookingRepo.BookingRepository, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, BookingRepo: repo, Cache: cache, Logger: logger}
}

// StartBookingSession creates a new booking session with an initial grid.
// POST /api/booking/session
func (h *BookingHandler) StartBookingSession(c *gin.Context) {
	var input struct {
		ProviderID      string `json:"providerId" binding:"required"`
		ServiceName     string `json:"serviceName" binding:"required"`
		DurationMinutes int    `json:"durationMinutes" binding:"required"`
		Date            string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	grid, err := h.Service.ComputeAvailability(c.Request.Context(), input.ProviderID, input.Date, input.DurationMinutes)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}

	session := models.BookingSession{
		SessionID:       uuid.New().String(),
		ProviderID:      input.ProviderID,
		ServiceName:     input.ServiceName,
		DurationMinutes: input.DurationMinutes,
		Date:            input.Date,
		Grid:            grid,
	}
	if err := h.saveSession(c, &session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cache booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": session.SessionID, "slots": grid})
}

// UpdateBookingSession changes the session's date or duration and recomputes the grid.
// PUT /api/booking/session/:sessionID
func (h *BookingHandler) UpdateBookingSession(c *gin.Context) {
	var input struct {
		Date            string `json:"date"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, ok := h.loadSession(c, c.Param("sessionID"))
	if !ok {
		return
	}
	if input.Date != "" {
		session.Date = input.Date
	}
	if input.DurationMinutes > 0 {
		session.DurationMinutes = input.DurationMinutes
	}

	grid, err := h.Service.ComputeAvailability(c.Request.Context(), session.ProviderID, session.Date, session.DurationMinutes)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}
	session.Grid = grid

	if err := h.saveSession(c, session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": session.SessionID, "date": session.Date, "slots": grid})
}

// ConfirmBooking validates the selected slot against current bookings and
// creates the booking. A conflict is reported back to the client to pick
// another time; the server never substitutes a slot on its own.
// POST /api/booking/confirm
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req models.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, ok := h.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	startMinute, err := availability.ParseTime(req.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start time", err.Error())
		return
	}

	booking, err := h.Service.ValidateAndReserve(c.Request.Context(), availability.ReserveRequest{
		ProviderID:      session.ProviderID,
		StaffID:         req.StaffID,
		Date:            session.Date,
		StartMinute:     startMinute,
		DurationMinutes: session.DurationMinutes,
		ServiceName:     session.ServiceName,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
	})
	if err != nil {
		h.respondReserveError(c, err)
		return
	}

	if err := h.Cache.Del(c.Request.Context(), sessionKeyPrefix+req.SessionID).Err(); err != nil {
		h.Logger.Warn("failed to drop booking session", zap.String("sessionID", req.SessionID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// RescheduleBooking moves an existing booking to a new staff/time, excluding
// the booking itself from the conflict check.
// POST /api/bookings/:bookingID/reschedule
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	startMinute, err := availability.ParseTime(req.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start time", err.Error())
		return
	}

	existing, err := h.BookingRepo.GetByID(bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}

	booking, err := h.Service.ValidateAndReserve(c.Request.Context(), availability.ReserveRequest{
		ProviderID:       existing.ProviderID,
		StaffID:          req.StaffID,
		Date:             req.Date,
		StartMinute:      startMinute,
		DurationMinutes:  existing.ServiceDurationMinutes,
		ServiceName:      existing.ServiceName,
		ExcludeBookingID: bookingID,
	})
	if err != nil {
		h.respondReserveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking marks a booking cancelled.
// DELETE /api/bookings/:bookingID
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if err := h.BookingRepo.Cancel(bookingID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "status": models.BookingStatusCancelled})
}

func (h *BookingHandler) respondReserveError(c *gin.Context, err error) {
	if conflict, ok := availability.IsConflict(err); ok {
		resp := gin.H{"error": "slot no longer available, please choose another time"}
		if conflict.Booking != nil {
			resp["conflictingBookingId"] = conflict.Booking.ID
		}
		c.JSON(http.StatusConflict, resp)
		return
	}
	switch {
	case errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, availability.ErrOutOfRange),
		errors.Is(err, availability.ErrInvalidFormat):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	default:
		h.Logger.Error("failed to reserve booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to reserve booking", "")
	}
}

func (h *BookingHandler) saveSession(c *gin.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return h.Cache.Set(c.Request.Context(), sessionKeyPrefix+session.SessionID, data, sessionTTL).Err()
}

func (h *BookingHandler) loadSession(c *gin.Context, sessionID string) (*models.BookingSession, bool) {
	data, err := h.Cache.Get(c.Request.Context(), sessionKeyPrefix+sessionID).Result()
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		return nil, false
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to parse booking session", err.Error())
		return nil, false
	}
	return &session, true
}
