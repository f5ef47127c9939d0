package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minimart/minimart-golang/internal/handlers"
	"github.com/minimart/minimart-golang/internal/models"
	"github.com/minimart/minimart-golang/internal/routes"
	"github.com/minimart/minimart-golang/internal/store"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	Store  *store.MemoryStore
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	h := &handlers.Handlers{Store: st}
	return &testEnv{Store: st, Router: routes.SetupRouter(h)}
}

// do sends a JSON request through the router. A string body is sent raw so
// tests can submit deliberately malformed JSON.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, e.Store.CreateProduct(context.Background(), &p))
	return p
}

func (e *testEnv) seedUser(t *testing.T, username, password, role string) models.User {
	t.Helper()
	u := models.User{Username: username, Password: password, Role: role}
	require.NoError(t, e.Store.CreateUser(context.Background(), &u))
	return u
}

func (e *testEnv) productStock(t *testing.T, p models.Product) int {
	t.Helper()
	got, err := e.Store.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	return got.Stock
}

// errorBody is the single-message failure shape of the cart and login routes.
type errorBody struct {
	Error string `json:"error"`
}

// productBody is the success shape of the product write routes.
type productBody struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}
