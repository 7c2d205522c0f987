package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
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
