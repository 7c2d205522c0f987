package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPlato(t *testing.T, router http.Handler, nombre string, precio float64) models.Plato {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/v1/platos", payload{"nombre": nombre, "precio": precio})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Plato](t, w)
}

func TestCreateThenGetPlato(t *testing.T) {
	router, _ := setupRouter(t)

	created := createPlato(t, router, "Arepa", 50)
	assert.NotZero(t, created.ID)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/platos/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Plato](t, w)
	assert.Equal(t, created, got)
}

func TestCreatePlatoIgnoresClientID(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/platos", payload{"id": 999, "nombre": "Arepa", "precio": 50})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEqual(t, 999, decode[models.Plato](t, w).ID)
}

func TestCreatePlatoValidation(t *testing.T) {
	router, db := setupRouter(t)

	testCases := []struct {
		name  string
		body  interface{}
		field string
	}{
		{name: "zero price", body: payload{"nombre": "Gratis", "precio": 0}, field: "precio"},
		{name: "negative price", body: payload{"nombre": "Deuda", "precio": -3.5}, field: "precio"},
		{name: "missing name", body: payload{"precio": 10}, field: "nombre"},
		{name: "name too long", body: payload{"nombre": strings.Repeat("a", 101), "precio": 10}, field: "nombre"},
		{name: "price not a number", body: payload{"nombre": "Arepa", "precio": "cincuenta"}, field: "precio"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/platos", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			apiErr := decode[models.APIError](t, w)
			assert.Equal(t, models.ErrValidationFailed, apiErr.Code)
			assert.Contains(t, apiErr.Details, tt.field)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Plato{}).Count(&count).Error)
	assert.Zero(t, count, "invalid payloads must never reach the store")
}

func TestCreatePlatoEmptyBody(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/platos", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetPlatoNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/platos/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	apiErr := decode[models.APIError](t, w)
	assert.Equal(t, models.ErrPlatoNotFound, apiErr.Code)
	assert.Equal(t, "Plato no encontrado", apiErr.Message)
}

func TestGetPlatoInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	for _, id := range []string{"abc", "0", "-4"} {
		w := doRequest(t, router, http.MethodGet, "/api/v1/platos/"+id, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "id %s", id)
	}
}

func TestListPlatosPaginationEnvelope(t *testing.T) {
	router, _ := setupRouter(t)
	for i := 1; i <= 15; i++ {
		createPlato(t, router, fmt.Sprintf("Plato %d", i), 10+float64(i))
	}

	testCases := []struct {
		skip    int
		first   string
		items   int
		page    int
		hasNext bool
		hasPrev bool
	}{
		{skip: 0, first: "Plato 1", items: 5, page: 1, hasNext: true, hasPrev: false},
		{skip: 5, first: "Plato 6", items: 5, page: 2, hasNext: true, hasPrev: true},
		{skip: 10, first: "Plato 11", items: 5, page: 3, hasNext: false, hasPrev: true},
		{skip: 15, items: 0, page: 4, hasNext: false, hasPrev: true},
	}

	for _, tt := range testCases {
		t.Run(fmt.Sprintf("skip=%d", tt.skip), func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/platos?skip=%d&limit=5", tt.skip), nil)
			require.Equal(t, http.StatusOK, w.Code)

			page := decode[models.Page[models.Plato]](t, w)
			assert.Equal(t, int64(15), page.Total)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, 5, page.PerPage)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.hasNext, page.HasNext)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			require.Len(t, page.Items, tt.items)
			if tt.items > 0 {
				assert.Equal(t, tt.first, page.Items[0].Nombre)
			}
		})
	}
}

func TestListPlatosDefaultsAndBounds(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/platos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[models.Page[models.Plato]](t, w)
	assert.Equal(t, models.DefaultLimit, page.PerPage)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.TotalPages)
	assert.NotNil(t, page.Items)
	assert.Contains(t, w.Body.String(), `"items":[]`)

	for _, query := range []string{"limit=0", "limit=101", "skip=-1", "limit=muchos"} {
		w := doRequest(t, router, http.MethodGet, "/api/v1/platos?"+query, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, query)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/platos?limit=100", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePlato(t *testing.T) {
	router, _ := setupRouter(t)
	created := createPlato(t, router, "Pabellón", 180)

	path := fmt.Sprintf("/api/v1/platos/%d", created.ID)
	w := doRequest(t, router, http.MethodPut, path, payload{"id": created.ID, "nombre": "Pabellón Criollo", "precio": 190})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Plato](t, w)
	assert.Equal(t, "Pabellón Criollo", updated.Nombre)
	assert.Equal(t, 190.0, updated.Precio)

	w = doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, updated, decode[models.Plato](t, w))
}

func TestUpdatePlatoIDMismatchDoesNotMutate(t *testing.T) {
	router, _ := setupRouter(t)
	created := createPlato(t, router, "Cachapa", 90)

	path := fmt.Sprintf("/api/v1/platos/%d", created.ID)
	w := doRequest(t, router, http.MethodPut, path, payload{"id": created.ID + 1, "nombre": "Otra cosa", "precio": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrIDMismatch, decode[models.APIError](t, w).Code)

	w = doRequest(t, router, http.MethodPut, path, payload{"nombre": "Sin id", "precio": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code, "a missing body id never matches")

	w = doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, created, decode[models.Plato](t, w))
}

func TestUpdatePlatoNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPut, "/api/v1/platos/77", payload{"id": 77, "nombre": "Fantasma", "precio": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePlatoValidation(t *testing.T) {
	router, _ := setupRouter(t)
	created := createPlato(t, router, "Quesillo", 50)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/platos/%d", created.ID),
		payload{"id": created.ID, "nombre": "Quesillo", "precio": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeletePlato(t *testing.T) {
	router, _ := setupRouter(t)
	created := createPlato(t, router, "Tostones", 35)
	path := fmt.Sprintf("/api/v1/platos/%d", created.ID)

	w := doRequest(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAllPlatos(t *testing.T) {
	router, _ := setupRouter(t)
	for i := 0; i < 3; i++ {
		createPlato(t, router, fmt.Sprintf("Plato %d", i), 1)
	}

	w := doRequest(t, router, http.MethodDelete, "/api/v1/platos", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/platos", nil)
	page := decode[models.Page[models.Plato]](t, w)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/platos", nil)
	assert.Equal(t, http.StatusNoContent, w.Code, "emptying an empty menu succeeds")
}
