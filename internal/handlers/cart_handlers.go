package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minimart/minimart-golang/internal/models"
	"github.com/minimart/minimart-golang/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//
// --- Cart Handlers ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddToCart is the handler for POST /cart.
// The stock check happens at insertion time only; settlement re-checks it.
// Lines are never merged, so adding the same product twice leaves two lines.
func (h *Handlers) AddToCart(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}
	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	// 2. --- Check the product can cover the request right now ---
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": (&store.InsufficientStockError{
			ProductID: input.ProductID,
			Requested: input.Quantity,
		}).Error()})
		return
	}

	product, err := h.Store.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": (&store.InsufficientStockError{
				ProductID: input.ProductID,
				Requested: input.Quantity,
			}).Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if product.Stock < input.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": (&store.InsufficientStockError{
			ProductID: input.ProductID,
			Name:      product.Name,
			Requested: input.Quantity,
			Available: product.Stock,
		}).Error()})
		return
	}

	// 3. --- Append the line ---
	line := &models.CartLine{
		UserID:    input.UserID,
		ProductID: productID,
		Quantity:  input.Quantity,
	}
	if err := h.Store.AddCartLine(c.Request.Context(), line); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added to cart"})
}

// PurchaseInput defines the JSON for checkout settlement.
type PurchaseInput struct {
	UserID string `json:"userId"`
}

// Purchase is the handler for POST /cart/purchase.
// It settles the user's cart lines in fetch order: each line re-checks and
// decrements its product's stock as it is processed. A line that cannot be
// covered aborts the whole settlement immediately; decrements already
// applied stay applied and the cart is left untouched. The cart is cleared
// in one bulk delete only after every line settles.
func (h *Handlers) Purchase(c *gin.Context) {
	var input PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	ctx := c.Request.Context()

	lines, err := h.Store.CartLines(ctx, input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	for _, line := range lines {
		product, err := h.Store.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": (&store.InsufficientStockError{
					ProductID: line.ProductID.Hex(),
					Requested: line.Quantity,
				}).Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// The stock condition lives in the update filter, so a concurrent
		// settlement of the same product cannot spend the same units twice.
		ok, err := h.Store.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": (&store.InsufficientStockError{
				ProductID: line.ProductID.Hex(),
				Name:      product.Name,
				Requested: line.Quantity,
				Available: product.Stock,
			}).Error()})
			return
		}
	}

	if err := h.Store.ClearCart(ctx, input.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.String(http.StatusOK, "Purchase successful!")
}
