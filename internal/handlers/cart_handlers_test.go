package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func addToCart(userID, productID string, qty int) map[string]any {
	return map[string]any{"userId": userID, "productId": productID, "quantity": qty}
}

func TestAddToCart(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 5)

	rec := env.do(t, http.MethodPost, "/cart", addToCart("u1", p.ID.Hex(), 3))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Product added to cart", resp.Message)

	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.NotEmpty(t, lines[0].ID)
	assert.Equal(t, p.ID, lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)

	// Adding at insertion time does not touch the stock.
	assert.Equal(t, 5, env.productStock(t, p))
}

func TestAddToCartDuplicateLinesAccumulate(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 5)

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/cart", addToCart("u1", p.ID.Hex(), 2))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestAddToCartValidation(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 5)

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{name: "missing userId", body: addToCart("", p.ID.Hex(), 1), message: "userId is required"},
		{name: "missing productId", body: addToCart("u1", "", 1), message: "productId is required"},
		{name: "zero quantity", body: addToCart("u1", p.ID.Hex(), 0), message: "quantity must be at least 1"},
		{name: "negative quantity", body: addToCart("u1", p.ID.Hex(), -2), message: "quantity must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/cart", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorBody
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.message, resp.Error)
		})
	}

	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 5)

	rec := env.do(t, http.MethodPost, "/cart", addToCart("u1", p.ID.Hex(), 6))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Error, "insufficient stock")
	assert.Contains(t, resp.Error, "Widget")

	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/cart", addToCart("u1", primitive.NewObjectID().Hex(), 1))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Error, "insufficient stock")
}

func TestPurchase(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 10)

	rec := env.do(t, http.MethodPost, "/cart", addToCart("u1", p.ID.Hex(), 3))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/cart/purchase", map[string]string{"userId": "u1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Purchase successful!", rec.Body.String())

	assert.Equal(t, 7, env.productStock(t, p))

	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPurchaseAbortsWhenStockDropped(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 5)

	rec := env.do(t, http.MethodPost, "/cart", addToCart("u1", p.ID.Hex(), 3))
	require.Equal(t, http.StatusOK, rec.Code)

	// Stock shrinks between add and purchase.
	p.Stock = 2
	require.NoError(t, env.Store.UpdateProduct(context.Background(), &p))

	rec = env.do(t, http.MethodPost, "/cart/purchase", map[string]string{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Error, "insufficient stock")
	assert.Contains(t, resp.Error, "Widget")

	// The abort leaves the cart in place and the stock untouched.
	assert.Equal(t, 2, env.productStock(t, p))
	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPurchaseKeepsEarlierDecrementsOnAbort(t *testing.T) {
	env := newTestEnv(t)
	a := env.seedProduct(t, "Widget", 9.99, 5)
	b := env.seedProduct(t, "Gadget", 4.99, 1)

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/cart", addToCart("u1", a.ID.Hex(), 2)).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/cart", addToCart("u1", b.ID.Hex(), 1)).Code)

	// Second line becomes unfillable before settlement.
	b.Stock = 0
	require.NoError(t, env.Store.UpdateProduct(context.Background(), &b))

	rec := env.do(t, http.MethodPost, "/cart/purchase", map[string]string{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Error, "Gadget")

	// The first line's decrement was already applied and is not rolled back.
	assert.Equal(t, 3, env.productStock(t, a))
	assert.Equal(t, 0, env.productStock(t, b))

	lines, err := env.Store.CartLines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestPurchaseAbortsWhenProductDeleted(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Widget", 9.99, 5)

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/cart", addToCart("u1", p.ID.Hex(), 1)).Code)
	require.NoError(t, env.Store.DeleteProduct(context.Background(), p.ID))

	rec := env.do(t, http.MethodPost, "/cart/purchase", map[string]string{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Error, "no longer exists")
}

func TestPurchaseEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/purchase", map[string]string{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Cart is empty", resp.Error)
}

func TestPurchaseRequiresUserID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/purchase", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorBody
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "userId is required", resp.Error)
}
