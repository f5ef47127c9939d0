package handlers

import (
	"github.com/minimart/minimart-golang/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store store.Store // Persistence boundary (Mongo in production, in-memory in tests)
}
