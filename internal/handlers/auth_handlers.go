package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minimart/minimart-golang/internal/store"
)

//
// --- Auth Handlers ---
//

// LoginInput defines the JSON for the credential check.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login is the handler for POST /login.
// It compares the submitted credentials against the users collection and
// returns the stored role. The comparison is plaintext, matching how the
// user records are stored.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	user, err := h.Store.FindUser(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}
