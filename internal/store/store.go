package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/minimart/minimart-golang/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by lookups that matched no document.
var ErrNotFound = errors.New("not found")

// InsufficientStockError reports a product that could not cover a requested
// quantity during cart accumulation or checkout settlement. Name is empty
// when the product no longer exists.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("insufficient stock: product %s no longer exists", e.ProductID)
	}
	return fmt.Sprintf("insufficient stock for %q: requested %d, only %d available", e.Name, e.Requested, e.Available)
}

// Store is the persistence boundary. The Mongo implementation backs the
// server; the in-memory implementation backs the tests.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error

	// DecrementStock subtracts qty from the product's stock only if the
	// current stock covers it. It reports false, with no write, when the
	// product is missing or the stock is short.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error)

	FindUser(ctx context.Context, username, password string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	CartLines(ctx context.Context, userID string) ([]models.CartLine, error)
	AddCartLine(ctx context.Context, line *models.CartLine) error
	ClearCart(ctx context.Context, userID string) error
}
