package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/minimart/minimart-golang/internal/handlers"
)

// corsOrigin returns the single origin allowed to call the API, overridable
// for deployments that serve the storefront from elsewhere.
func corsOrigin() string {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return origin
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must be registered before any route.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Auth ---
	router.POST("/login", h.Login)

	// --- Products ---
	router.GET("/product", h.ListProducts)
	router.POST("/products", h.CreateProduct)
	router.PUT("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// --- Cart ---
	router.POST("/cart", h.AddToCart)
	router.POST("/cart/purchase", h.Purchase)

	return router
}
