package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/infrastructure/remote"
	"github.com/jhoicas/ecomicro/pkg/requestid"
)

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *http.Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	hc := remote.NewHTTPClient(2 * time.Second)
	t.Cleanup(func() {
		hc.CloseIdleConnections()
		srv.Close()
	})
	return srv, hc
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

func TestUserClient_GetUserPropagaRequestID(t *testing.T) {
	var gotPath, gotID string
	srv, hc := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotID = r.URL.Path, r.Header.Get(requestid.Header)
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "Alice", "email": "alice@example.com"})
	})

	ctx := requestid.NewContext(context.Background(), "req-123")
	u, err := remote.NewUserClient(hc, srv.URL+"/").GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "/users/1", gotPath)
	assert.Equal(t, "req-123", gotID)
}

func TestUserClient_404EsNotFound(t *testing.T) {
	srv, hc := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
	})

	_, err := remote.NewUserClient(hc, srv.URL).GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var se *remote.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "User not found", se.Message)
}

func TestUserClient_500NoEsNotFound(t *testing.T) {
	srv, hc := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	})

	_, err := remote.NewUserClient(hc, srv.URL).GetUser(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestUserClient_TimeoutEsErrorGenerico(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	hc := remote.NewHTTPClient(50 * time.Millisecond)
	defer func() {
		close(release)
		hc.CloseIdleConnections()
		srv.Close()
	}()

	_, err := remote.NewUserClient(hc, srv.URL).GetUser(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ─── Productos ───────────────────────────────────────────────────────────────

func TestProductClient_PrecioComoString(t *testing.T) {
	srv, hc := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "Laptop", "price": "1500.00"})
		case http.MethodPost:
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			writeJSON(w, http.StatusOK, map[string]any{"id": 3, "name": in["name"], "price": in["price"]})
		}
	})
	c := remote.NewProductClient(hc, srv.URL)

	p, err := c.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(1500)))

	created, err := c.CreateProduct(context.Background(), "Monitor", decimal.RequireFromString("249.9"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "249.90", created.Price.StringFixed(2))
}

// ─── Inventario ──────────────────────────────────────────────────────────────

func TestInventoryClient_Operaciones(t *testing.T) {
	var mu sync.Mutex
	stock := int64(10)
	srv, hc := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		var in struct {
			ProductID int64 `json:"product_id"`
			Quantity  int64 `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/inventory/1":
			writeJSON(w, http.StatusOK, map[string]int64{"product_id": 1, "quantity": stock})
		case r.Method == http.MethodPut && r.URL.Path == "/inventory/1":
			stock = in.Quantity
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		case r.Method == http.MethodPost && r.URL.Path == "/inventory/1/reserve":
			if in.Quantity > stock {
				writeJSON(w, http.StatusConflict, map[string]string{"error": "Insufficient stock"})
				return
			}
			stock -= in.Quantity
			writeJSON(w, http.StatusOK, map[string]int64{"product_id": 1, "quantity": stock})
		case r.Method == http.MethodPost && r.URL.Path == "/inventory":
			stock += in.Quantity
			writeJSON(w, http.StatusOK, map[string]int64{"product_id": in.ProductID, "quantity": stock})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Inventory item not found"})
		}
	})
	c := remote.NewInventoryClient(hc, srv.URL)
	ctx := context.Background()

	it, err := c.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), it.Quantity)

	require.NoError(t, c.SetQuantity(ctx, 1, 8))
	it, err = c.Reserve(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), it.Quantity)

	_, err = c.Reserve(ctx, 1, 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, err = c.AddStock(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), it.Quantity)

	_, err = c.GetStock(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.Reserve(ctx, 2, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
