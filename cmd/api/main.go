package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/clinicore/scheduling-api/docs"
	"github.com/clinicore/scheduling-api/internal/handlers"
	"github.com/clinicore/scheduling-api/internal/services"
	"github.com/clinicore/scheduling-api/internal/store"
)

// @title           Clinic Scheduling API
// @version         1.0
// @description     Demonstration REST API for a minimal healthcare-scheduling workflow:
// @description     patients, providers and the appointments between them. All data lives
// @description     in process memory for the lifetime of the server.
//
// @host      localhost:8080
// @BasePath  /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// --- Stores ---
	// Built once here and handed to the handlers; restarting the process
	// starts over from empty stores.
	patients := store.NewPatientStore()
	providers := store.NewProviderStore()
	appointments := store.NewAppointmentStore()

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		services.SeedDemoData(patients, providers, appointments)
	}

	h := handlers.NewHandler(patients, providers, appointments)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// --- Routes ---
	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}
	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
