package routes

import (
	"github.com/gin-gonic/gin"

	"salonbook/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.StartBookingSession)            // Phase 1: Start session
		booking.PUT("/session/:sessionID", bh.UpdateBookingSession) // Phase 2: Adjust date/duration
		booking.POST("/confirm", bh.ConfirmBooking)                 // Phase 3: Confirm booking
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("/:bookingID/reschedule", bh.RescheduleBooking)
		bookings.DELETE("/:bookingID", bh.CancelBooking)
	}
}
