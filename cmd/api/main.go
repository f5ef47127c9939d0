package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minimart/minimart-golang/internal/database"
	"github.com/minimart/minimart-golang/internal/handlers"
	"github.com/minimart/minimart-golang/internal/routes"
	"github.com/minimart/minimart-golang/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Store Connection ---
	client, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Printf("Error disconnecting from Mongo: %v", err)
		}
	}()

	db := client.Database(database.Name())

	// --- Application Setup ---
	// The store client is constructed once here and injected into the
	// handler set; no package-level connection state.
	app := &handlers.Handlers{
		Store: store.NewMongoStore(db),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting minimart API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
