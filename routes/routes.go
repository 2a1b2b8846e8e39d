package routes

import (
	"net/http"

	"medbox-cloud-reminder/config"
	"medbox-cloud-reminder/controllers"
	"medbox-cloud-reminder/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Patient routes
		patients := api.Group("/patients")
		{
			patients.POST("", controllers.CreatePatient)
			patients.GET("", controllers.GetPatients)
			patients.GET("/:id", controllers.GetPatient)
			patients.PUT("/:id", controllers.UpdatePatient)
			patients.DELETE("/:id", controllers.DeletePatient)

			patients.POST("/:id/schedules", controllers.CreateSchedule)
			patients.GET("/:id/schedules", controllers.GetSchedules)
		}

		// Schedule routes
		schedules := api.Group("/schedules")
		{
			schedules.GET("/:id", controllers.GetSchedule)
			schedules.PUT("/:id", controllers.UpdateSchedule)
			schedules.DELETE("/:id", controllers.DeleteSchedule)
		}
	}

	return r
}
