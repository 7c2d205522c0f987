//go:build integration

package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func setupPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("restaurante"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "postgres", URL: dsn})
	require.NoError(t, err)

	registry, err := database.NewRegistry(&models.Plato{}, &models.Cliente{}, &models.Pedido{})
	require.NoError(t, err)
	require.NoError(t, registry.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestPostgresPlatoPagination(t *testing.T) {
	ctx := context.Background()
	svc := NewPlatoService(setupPostgresDB(t))

	for i := 1; i <= 15; i++ {
		_, err := svc.CreatePlato(ctx, models.PlatoCreate{Nombre: "Plato", Precio: float64(10 + i)})
		require.NoError(t, err)
	}

	items, total, err := svc.ListPlatos(ctx, 10, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	require.Len(t, items, 5)
	assert.Equal(t, 11, items[0].ID)

	items, _, err = svc.ListPlatos(ctx, 15, 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPostgresDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewClienteService(setupPostgresDB(t))

	_, err := svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateCliente(ctx, models.ClienteCreate{Nombre: "Otra Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestPostgresPedidoReferenceIsAdvisory(t *testing.T) {
	ctx := context.Background()
	svc := NewPedidoService(setupPostgresDB(t))

	pedido, err := svc.CreatePedido(ctx, models.PedidoCreate{IDCliente: 999, Fecha: "2024-05-01", Monto: 42})
	require.NoError(t, err)
	assert.Equal(t, 999, pedido.IDCliente)

	require.NoError(t, svc.DeletePedido(ctx, pedido.ID))
	assert.ErrorIs(t, svc.DeletePedido(ctx, pedido.ID), ErrNotFound)
}
