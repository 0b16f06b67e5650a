package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/handlers"
	"salonbook/utils"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler, bh *handlers.BookingHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	providers := r.Group("/api/providers")
	{
		providers.GET("/:providerID/availability", ah.GetAvailabilityHandler)
		providers.GET("/:providerID/schedule", ah.GetScheduleHandler)
		providers.PUT("/:providerID/schedule", ah.SetScheduleHandler)
		providers.GET("/:providerID/staff", ah.GetStaffHandler)
	}

	RegisterBookingRoutes(r, bh)
}
