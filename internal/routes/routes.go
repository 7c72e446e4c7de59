package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger(ginlog.WithDefaultLevel(zerolog.InfoLevel)))

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Taka Track API is running")
	})

	AuthRoutes(r)
	PickupRoutes(r)
	DriverRoutes(r)
	NgoRoutes(r)
	AdminRoutes(r)

	return r
}
