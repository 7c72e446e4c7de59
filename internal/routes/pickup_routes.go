package routes

import (
	"taka_track/internal/controllers"
	"taka_track/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PickupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/pickups", middleware.RequireAuthWithRole("admin"), controllers.ListPickups)
		api.POST("/schedule", middleware.RequireAuthWithRole("user"), controllers.SchedulePickup)
		api.GET("/my-pickups", middleware.RequireAuthWithRole("user"), controllers.MyPickups)
		api.PATCH("/pickups/:id/complete", middleware.RequireAuthWithAnyRole("admin", "driver"), controllers.CompletePickup)
	}
}
