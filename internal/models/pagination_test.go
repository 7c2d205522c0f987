package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name       string
		items      int
		total      int64
		skip       int
		limit      int
		page       int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first page", items: 5, total: 15, skip: 0, limit: 5, page: 1, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", items: 5, total: 15, skip: 5, limit: 5, page: 2, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last full page", items: 5, total: 15, skip: 10, limit: 5, page: 3, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "past the end", items: 0, total: 15, skip: 15, limit: 5, page: 4, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "partial last page", items: 2, total: 12, skip: 10, limit: 5, page: 3, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "unaligned skip", items: 5, total: 15, skip: 7, limit: 5, page: 2, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "empty store", items: 0, total: 0, skip: 0, limit: 5, page: 1, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "empty store with skip", items: 0, total: 0, skip: 10, limit: 5, page: 3, totalPages: 0, hasNext: false, hasPrev: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]Plato, tt.items)

			page := NewPage(items, tt.total, tt.skip, tt.limit)

			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.limit, page.PerPage)
			assert.Equal(t, tt.totalPages, page.TotalPages)
			assert.Equal(t, tt.hasNext, page.HasNext)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			assert.Len(t, page.Items, tt.items)
		})
	}
}

func TestNewPageNeverReturnsNilItems(t *testing.T) {
	page := NewPage[Plato](nil, 0, 0, DefaultLimit)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestClienteCreateActivoDefault(t *testing.T) {
	inactive := false
	assert.True(t, ClienteCreate{}.ActivoOrDefault())
	assert.False(t, ClienteCreate{Activo: &inactive}.ActivoOrDefault())
}

func TestNewAPIErrorDetails(t *testing.T) {
	plain := NewAPIError(ErrNotFound, "Plato no encontrado")
	assert.Nil(t, plain.Details)

	detailed := NewAPIError(ErrValidationFailed, "invalid", map[string]interface{}{"precio": "must be greater than 0"})
	assert.Equal(t, "must be greater than 0", detailed.Details["precio"])
}
