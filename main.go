package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"insuretrack-backend/config"
	"insuretrack-backend/models"
	"insuretrack-backend/routes"
	"insuretrack-backend/services"
	"insuretrack-backend/storage"

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
		&models.Customer{},
		&models.Insurance{},
		&models.Document{},
		&models.RenewalReminderLog{},
	)
}

func newBlobStore() storage.Store {
	if os.Getenv("STORAGE_DRIVER") == "s3" {
		store, err := storage.NewS3Store(context.Background(), os.Getenv("BUCKET_NAME"))
		if err != nil {
			log.Fatalf("Failed to set up S3 storage: %v", err)
		}
		return store
	}
	return storage.NewLocalStore(os.Getenv("UPLOAD_DIR"))
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		services.NewRenewalReminderService(config.DB).StartScheduler()
	} else {
		log.Println("Twilio not configured, renewal reminders disabled")
	}

	r := routes.SetupRouter(config.DB, newBlobStore())
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
