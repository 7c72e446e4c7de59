package routes

import (
	"taka_track/internal/controllers"
	"taka_track/internal/middleware"

	"github.com/gin-gonic/gin"
)

func NgoRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/ngos", controllers.ListNgos)
		api.GET("/ngos/:id", controllers.GetNgo)

		api.POST("/donate/:ngoId", middleware.RequireAuth(), controllers.Donate)
		api.GET("/donations/admin", middleware.RequireAuthWithRole("admin"), controllers.ListAllDonations)
		api.GET("/donations/ngo", middleware.RequireAuthWithRole("ngo"), controllers.ListNgoDonations)
	}
}
