package routes

import (
	"taka_track/internal/controllers"
	"taka_track/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/api/driver")
	driver.Use(middleware.RequireAuthWithRole("driver"))
	{
		driver.GET("/route", controllers.GetDriverRoute)
		driver.PATCH("/trucks/:id/service", controllers.SetTruckServiceStatus)
	}
}
