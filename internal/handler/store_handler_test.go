package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/model"
)

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func createStore(t *testing.T, router http.Handler, name string) model.Store {
	t.Helper()

	w := postJSON(t, router, "/api/v1/stores", dto.CreateStoreRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var store model.Store
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &store))
	return store
}

func TestStoreHandler(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	router := setupRouter(t)

	t.Run("happy: create and fetch", func(t *testing.T) {
		store := createStore(t, router, "Corner Electronics")
		assert.NotEmpty(t, store.ID)
		assert.Equal(t, "Corner Electronics", store.Name)

		w := getJSON(t, router, "/api/v1/stores/"+store.ID)
		assert.Equal(t, http.StatusOK, w.Code)

		var fetched model.Store
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, store.ID, fetched.ID)
	})

	t.Run("bad: missing name", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/stores", map[string]string{"description": "nameless"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: unknown store", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/stores/00000000-0000-0000-0000-0000000000ff")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("happy: delete cascades", func(t *testing.T) {
		store := createStore(t, router, "Short Lived")

		w := postJSON(t, router, fmt.Sprintf("/api/v1/stores/%s/products", store.ID), dto.CreateProductRequest{
			Name: "Widget", Price: 20, Cost: 8, Category: "misc",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		req, _ := http.NewRequest("DELETE", "/api/v1/stores/"+store.ID, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = getJSON(t, router, "/api/v1/stores/"+store.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	router := setupRouter(t)
	store := createStore(t, router, "Gadget Hub")

	t.Run("happy: add and list", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/v1/stores/%s/products", store.ID), dto.CreateProductRequest{
			Name: "Wireless Mouse", Price: 29.99, Cost: 11.50, Category: "electronics",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var product model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, store.ID, product.StoreID)

		w = getJSON(t, router, fmt.Sprintf("/api/v1/stores/%s/products", store.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		assert.Len(t, products, 1)
	})

	t.Run("bad: cost at or above price", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/v1/stores/%s/products", store.ID), dto.CreateProductRequest{
			Name: "Loss Leader", Price: 10, Cost: 10, Category: "misc",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: product for unknown store", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/stores/00000000-0000-0000-0000-0000000000ff/products", dto.CreateProductRequest{
			Name: "Orphan", Price: 5, Cost: 1, Category: "misc",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStrategyHandler(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	router := setupRouter(t)
	store := createStore(t, router, "Promo Lab")

	t.Run("happy: create, update, delete", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/v1/stores/%s/strategies", store.ID), dto.CreateStrategyRequest{
			Name: "Summer Sale", Type: model.StrategyPercentageDiscount, DiscountPercentage: 15, IsActive: true,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var strategy model.Strategy
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &strategy))
		assert.Equal(t, 15.0, strategy.DiscountPercentage)

		patch := map[string]any{"discount_percentage": 25, "is_active": false}
		body, _ := json.Marshal(patch)
		req, _ := http.NewRequest("PATCH", fmt.Sprintf("/api/v1/stores/%s/strategies/%s", store.ID, strategy.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated model.Strategy
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, 25.0, updated.DiscountPercentage)
		assert.False(t, updated.IsActive)
		assert.Equal(t, model.StrategyPercentageDiscount, updated.Type, "kind is immutable")

		req, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/v1/stores/%s/strategies/%s", store.ID, strategy.ID), nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad: unknown kind", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/v1/stores/%s/strategies", store.ID), map[string]any{
			"name": "Mystery", "type": "FLASH_MOB",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
