package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/minimart/minimart-golang/internal/database"
	"github.com/minimart/minimart-golang/internal/models"
	"github.com/minimart/minimart-golang/internal/store"
)

// Development seeding: two accounts and a starter catalog. Passwords are
// stored in plaintext because the login contract compares them in plaintext.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	client, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer database.Close(client)

	st := store.NewMongoStore(client.Database(database.Name()))
	ctx := context.Background()

	users := []models.User{
		{Username: "admin", Password: "admin123", Role: models.RoleAdmin},
		{Username: "user", Password: "user123", Role: models.RoleUser},
	}
	for i := range users {
		if err := st.CreateUser(ctx, &users[i]); err != nil {
			log.Fatalf("Failed to seed user %q: %v", users[i].Username, err)
		}
	}

	products := []models.Product{
		{Name: "Wireless Mouse", Price: 24.99, Stock: 50},
		{Name: "Mechanical Keyboard", Price: 89.99, Stock: 25},
		{Name: "USB-C Hub", Price: 39.99, Stock: 40},
		{Name: "Laptop Stand", Price: 29.99, Stock: 30},
	}
	for i := range products {
		if err := st.CreateProduct(ctx, &products[i]); err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}

	log.Printf("Seeded %d users and %d products", len(users), len(products))
}
