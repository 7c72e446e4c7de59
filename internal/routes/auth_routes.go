package routes

import (
	"taka_track/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/register-ngo", controllers.RegisterNgo)
		auth.POST("/login", controllers.LoginUser)
	}
}
