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
// --- Product Handlers ---
//

// ProductInput defines the JSON for creating and updating a product.
// Price and Stock are pointers so that a missing field is distinguishable
// from an explicit zero.
type ProductInput struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Stock *int     `json:"stock" binding:"required,gte=0"`
}

// ListProducts is the handler for GET /product.
// Returns every product, unordered and unpaginated.
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct is the handler for POST /products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	// 2. --- Persist ---
	product := &models.Product{
		Name:  input.Name,
		Price: *input.Price,
		Stock: *input.Stock,
	}
	if err := h.Store.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct is the handler for PUT /products/:id.
// A malformed id cannot match an existing record, so it reports NotFound
// like any other missing id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	product := &models.Product{
		ID:    id,
		Name:  input.Name,
		Price: *input.Price,
		Stock: *input.Stock,
	}
	if err := h.Store.UpdateProduct(c.Request.Context(), product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct is the handler for DELETE /products/:id.
// The delete is unconditional: a missing or malformed id still succeeds,
// which keeps the operation idempotent.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if id, err := primitive.ObjectIDFromHex(c.Param("id")); err == nil {
		if err := h.Store.DeleteProduct(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
