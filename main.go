package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"medbox-cloud-reminder/config"
	"medbox-cloud-reminder/models"
	"medbox-cloud-reminder/routes"
	"medbox-cloud-reminder/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Caregiver{},
		&models.Patient{},
		&models.MedicationSchedule{},
	)
}

func main() {
	dispatcher := services.NewDispatcherService(
		services.NewDirectoryService(config.DB),
		services.NewTwilioNotifier(),
	)
	go dispatcher.Run(context.Background())

	services.NewMaintenanceService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
