// Package seed loads the sample dish catalog into the store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed platos_ejemplo.yaml
var catalogYAML []byte

// Catalog is the on-disk shape of a dish catalog
type Catalog struct {
	Platos []models.PlatoCreate `yaml:"platos"`
}

// Load parses the embedded sample catalog
func Load() ([]models.PlatoCreate, error) {
	return Parse(catalogYAML)
}

// LoadFile parses a catalog from the given path
func LoadFile(path string) ([]models.PlatoCreate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) ([]models.PlatoCreate, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	for i, p := range catalog.Platos {
		if strings.TrimSpace(p.Nombre) == "" {
			return nil, fmt.Errorf("catalog entry %d: nombre is required", i+1)
		}
		if utf8.RuneCountInString(p.Nombre) > 100 {
			return nil, fmt.Errorf("catalog entry %d (%s): nombre exceeds 100 characters", i+1, p.Nombre)
		}
		if p.Precio <= 0 {
			return nil, fmt.Errorf("catalog entry %d (%s): precio must be greater than 0", i+1, p.Nombre)
		}
	}
	return catalog.Platos, nil
}

// SeedPlatos inserts every dish in order and returns how many were stored
func SeedPlatos(ctx context.Context, svc services.PlatoService, platos []models.PlatoCreate) (int, error) {
	for i, p := range platos {
		if _, err := svc.CreatePlato(ctx, p); err != nil {
			return i, fmt.Errorf("seeding %q: %w", p.Nombre, err)
		}
	}
	log.WithField("count", len(platos)).Info("Platos de ejemplo cargados")
	return len(platos), nil
}

// SeedIfEmpty inserts the catalog only when no dish is stored yet
func SeedIfEmpty(ctx context.Context, svc services.PlatoService, platos []models.PlatoCreate) (int, error) {
	count, err := svc.CountPlatos(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting platos: %w", err)
	}
	if count > 0 {
		log.WithField("count", count).Info("Database already seeded with platos")
		return 0, nil
	}
	log.Info("Database is empty, seeding sample platos")
	return SeedPlatos(ctx, svc, platos)
}
