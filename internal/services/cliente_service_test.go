package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClienteDefaultsActivo(t *testing.T) {
	svc := NewClienteService(setupTestDB(t))
	ctx := context.Background()

	cliente, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "María", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.True(t, cliente.Activo)

	inactive := false
	other, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "Luis", Email: "luis@example.com", Activo: &inactive})
	require.NoError(t, err)

	stored, err := svc.GetClienteByID(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, stored.Activo, "explicit false must be persisted")
}

func TestCreateClienteDuplicateEmail(t *testing.T) {
	svc := NewClienteService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "María", Email: "maria@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "Otra María", Email: "maria@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUpdateCliente(t *testing.T) {
	svc := NewClienteService(setupTestDB(t))
	ctx := context.Background()

	maria, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "María", Email: "maria@example.com"})
	require.NoError(t, err)
	luis, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateCliente(ctx, maria.ID, models.ClienteUpdate{ID: maria.ID, Nombre: "María José", Email: "mj@example.com", Activo: false})
	require.NoError(t, err)
	assert.Equal(t, "María José", updated.Nombre)
	assert.False(t, updated.Activo)

	_, err = svc.UpdateCliente(ctx, luis.ID, models.ClienteUpdate{ID: luis.ID, Nombre: "Luis", Email: "mj@example.com", Activo: true})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = svc.UpdateCliente(ctx, 999, models.ClienteUpdate{ID: 999, Nombre: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDeleteClientes(t *testing.T) {
	svc := NewClienteService(setupTestDB(t))
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: email, Email: email})
		require.NoError(t, err)
	}

	items, total, err := svc.ListClientes(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "b@example.com", items[0].Email)

	require.NoError(t, svc.DeleteCliente(ctx, items[0].ID))
	assert.ErrorIs(t, svc.DeleteCliente(ctx, items[0].ID), ErrNotFound)

	removed, err := svc.DeleteAllClientes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
