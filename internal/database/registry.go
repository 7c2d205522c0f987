package database

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Registry is the single schema registry of the application.
// Every entity is registered exactly once and the registry is handed
// explicitly to whoever creates the tables.
type Registry struct {
	models []interface{}
	tables map[string]struct{}
	naming schema.Namer
}

// NewRegistry builds a registry from the given models, failing on duplicates
func NewRegistry(models ...interface{}) (*Registry, error) {
	r := &Registry{
		tables: make(map[string]struct{}),
		naming: schema.NamingStrategy{},
	}
	for _, m := range models {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a model to the registry.
// Registering two models that map to the same table is an error.
func (r *Registry) Register(model interface{}) error {
	table, err := r.tableName(model)
	if err != nil {
		return err
	}
	if _, exists := r.tables[table]; exists {
		return fmt.Errorf("table %q already registered", table)
	}
	r.tables[table] = struct{}{}
	r.models = append(r.models, model)
	return nil
}

// Models returns the registered models in registration order
func (r *Registry) Models() []interface{} {
	out := make([]interface{}, len(r.models))
	copy(out, r.models)
	return out
}

// Tables returns the registered table names in registration order
func (r *Registry) Tables() []string {
	names := make([]string, 0, len(r.models))
	for _, m := range r.models {
		// already validated by Register
		name, _ := r.tableName(m)
		names = append(names, name)
	}
	return names
}

// Migrate creates the registered tables when they are absent.
// There is no migration history: existing tables are only extended by AutoMigrate.
func (r *Registry) Migrate(db *gorm.DB) error {
	for _, m := range r.models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("auto-migrating %T: %w", m, err)
		}
	}
	log.WithField("tables", r.Tables()).Info("Database schema ready")
	return nil
}

func (r *Registry) tableName(model interface{}) (string, error) {
	if tabler, ok := model.(schema.Tabler); ok {
		return tabler.TableName(), nil
	}
	s, err := schema.Parse(model, &sync.Map{}, r.naming)
	if err != nil {
		return "", fmt.Errorf("parsing model %T: %w", model, err)
	}
	return s.Table, nil
}
