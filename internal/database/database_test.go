package database

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mesa struct {
	ID     int
	Numero int
}

type platoAlias struct {
	ID int
}

func (platoAlias) TableName() string { return "platos" }

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "postgres url",
			config:   DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "postgres", Password: "secreto", Name: "restaurante", SSLMode: "disable"},
			expected: "postgresql://postgres:secreto@db:5432/restaurante?sslmode=disable",
		},
		{
			name:     "postgres url with reserved characters in password",
			config:   DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "postgres", Password: "p@ss w/rd", Name: "restaurante"},
			expected: "postgresql://postgres:p%40ss%20w%2Frd@db:5432/restaurante",
		},
		{
			name:     "postgres url override",
			config:   DatabaseConfig{Driver: "postgresql", Host: "db", URL: "postgres://u:p@other:6543/x"},
			expected: "postgres://u:p@other:6543/x",
		},
		{
			name:     "sqlite path",
			config:   DatabaseConfig{Driver: "sqlite", Path: "restaurante.sqlite"},
			expected: "restaurante.sqlite",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDSNPasswordRoundTrip(t *testing.T) {
	passwords := []string{"p ss", "p+ss", "p@ss w/rd", "a:b?c#d", "contraseña ñ%20"}

	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			c := DatabaseConfig{Driver: "postgres", Host: "db", Port: 6543, User: "admin user", Password: password, Name: "restaurante", SSLMode: "disable"}

			parsed, err := pgconn.ParseConfig(c.DSN())
			require.NoError(t, err)
			assert.Equal(t, password, parsed.Password)
			assert.Equal(t, "admin user", parsed.User)
			assert.Equal(t, "db", parsed.Host)
			assert.EqualValues(t, 6543, parsed.Port)
			assert.Equal(t, "restaurante", parsed.Database)
		})
	}
}

func TestDatabaseConfigStringMasksPassword(t *testing.T) {
	c := DatabaseConfig{Driver: "postgres", Password: "secreto"}
	assert.NotContains(t, c.String(), "secreto")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestRegistryRejectsDuplicateTables(t *testing.T) {
	registry, err := NewRegistry(&models.Plato{}, &models.Cliente{})
	require.NoError(t, err)

	err = registry.Register(&platoAlias{})
	assert.Error(t, err)

	_, err = NewRegistry(&models.Pedido{}, &models.Pedido{})
	assert.Error(t, err)

	assert.Equal(t, []string{"platos", "clientes"}, registry.Tables())
	assert.Len(t, registry.Models(), 2)
}

func TestRegistryDerivesTableNames(t *testing.T) {
	registry, err := NewRegistry(&mesa{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mesas"}, registry.Tables())
}

func TestRegistryMigrate(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	registry, err := NewRegistry(&models.Plato{}, &models.Cliente{}, &models.Pedido{})
	require.NoError(t, err)
	require.NoError(t, registry.Migrate(db))
	// creating tables is idempotent
	require.NoError(t, registry.Migrate(db))

	for _, table := range registry.Tables() {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, Ping(context.Background(), db))
}
