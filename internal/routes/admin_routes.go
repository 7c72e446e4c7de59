package routes

import (
	"taka_track/internal/controllers"
	"taka_track/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/drivers", controllers.ListDrivers)
		admin.GET("/trucks", controllers.ListTrucks)
		admin.POST("/trucks", controllers.CreateTruck)
	}
}
