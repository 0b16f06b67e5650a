package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/availability"
)

type stubAvailabilityService struct {
	grid       models.SlotGrid
	gridErr    error
	reserved   *models.Booking
	reserveErr error
	lastReq    availability.ReserveRequest
}

func (s *stubAvailabilityService) ComputeAvailability(ctx context.Context, providerID, date string, durationMinutes int) (models.SlotGrid, error) {
	if durationMinutes <= 0 {
		return nil, availability.ErrInvalidDuration
	}
	return s.grid, s.gridErr
}

func (s *stubAvailabilityService) ValidateAndReserve(ctx context.Context, req availability.ReserveRequest) (*models.Booking, error) {
	s.lastReq = req
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	return s.reserved, nil
}

type stubScheduleRepo struct {
	windows []models.WorkingWindow
	staff   []models.Staff
	saveErr error
}

func (s *stubScheduleRepo) ListWindowsForDate(providerID, date string) ([]models.WorkingWindow, error) {
	return s.windows, nil
}

func (s *stubScheduleRepo) ReplaceWindowsForDate(providerID, date string, windows []models.WorkingWindow) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.windows = windows
	return nil
}

func (s *stubScheduleRepo) ListStaff(providerID string) ([]models.Staff, error) {
	return s.staff, nil
}

func (s *stubScheduleRepo) GetStaff(providerID, staffID string) (*models.Staff, error) {
	for i := range s.staff {
		if s.staff[i].ID == staffID {
			return &s.staff[i], nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", staffID)
}

func newAvailabilityRouter(svc availability.AvailabilityService, repo *stubScheduleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc, repo, zap.NewNop())
	r.GET("/api/providers/:providerID/availability", h.GetAvailabilityHandler)
	r.PUT("/api/providers/:providerID/schedule", h.SetScheduleHandler)
	r.GET("/api/providers/:providerID/staff", h.GetStaffHandler)
	return r
}

func TestGetAvailabilityHandler(t *testing.T) {
	svc := &stubAvailabilityService{grid: models.SlotGrid{
		"09:00": {{StaffID: "asha", StaffName: "Asha", Time: "09:00", State: models.SlotAvailable}},
	}}
	router := newAvailabilityRouter(svc, &stubScheduleRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/prov-1/availability?date=2026-09-01&duration=30", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Date  string          `json:"date"`
		Slots models.SlotGrid `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-01", body.Date)
	require.Len(t, body.Slots["09:00"], 1)
	assert.Equal(t, "Asha", body.Slots["09:00"][0].StaffName)
}

func TestGetAvailabilityHandlerBadRequests(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityService{}, &stubScheduleRepo{})

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing duration", url: "/api/providers/prov-1/availability?date=2026-09-01"},
		{name: "bad duration", url: "/api/providers/prov-1/availability?date=2026-09-01&duration=abc"},
		{name: "bad date", url: "/api/providers/prov-1/availability?date=tomorrow&duration=30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSetScheduleHandlerValidatesWindows(t *testing.T) {
	repo := &stubScheduleRepo{}
	router := newAvailabilityRouter(&stubAvailabilityService{}, repo)

	payload := `{"date":"2026-09-01","windows":[{"staffId":"asha","date":"2026-09-01","start":600,"end":540}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/providers/prov-1/schedule", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.windows)
}

func TestSetScheduleHandlerAcceptsValidWindows(t *testing.T) {
	repo := &stubScheduleRepo{}
	router := newAvailabilityRouter(&stubAvailabilityService{}, repo)

	payload := `{"date":"2026-09-01","windows":[{"staffId":"asha","date":"2026-09-01","start":540,"end":1020}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/providers/prov-1/schedule", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.windows, 1)
	assert.Equal(t, 540, repo.windows[0].Start)
}
