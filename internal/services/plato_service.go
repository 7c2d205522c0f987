package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"gorm.io/gorm"
)

// PlatoService provides methods to interact with the platos table
type PlatoService interface {
	// ListPlatos returns one page of dishes in store order and the total count
	ListPlatos(ctx context.Context, skip, limit int) ([]models.Plato, int64, error)
	// CountPlatos returns how many dishes are stored
	CountPlatos(ctx context.Context) (int64, error)
	// GetPlatoByID retrieves a dish by its ID
	GetPlatoByID(ctx context.Context, id int) (models.Plato, error)
	// CreatePlato stores a new dish; the ID is assigned by the database
	CreatePlato(ctx context.Context, input models.PlatoCreate) (models.Plato, error)
	// UpdatePlato overwrites name and price of an existing dish
	UpdatePlato(ctx context.Context, id int, input models.PlatoUpdate) (models.Plato, error)
	// DeletePlato deletes a dish by its ID
	DeletePlato(ctx context.Context, id int) error
	// DeleteAllPlatos empties the table
	DeleteAllPlatos(ctx context.Context) (int64, error)
}

// platoService is the implementation of the PlatoService interface
type platoService struct {
	db *gorm.DB
}

// NewPlatoService creates a new instance of PlatoService
func NewPlatoService(db *gorm.DB) PlatoService {
	return &platoService{db: db}
}

func (s *platoService) ListPlatos(ctx context.Context, skip, limit int) ([]models.Plato, int64, error) {
	return listPage[models.Plato](ctx, s.db, nil, skip, limit)
}

func (s *platoService) CountPlatos(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Plato{}).Count(&count).Error
	return count, err
}

func (s *platoService) GetPlatoByID(ctx context.Context, id int) (models.Plato, error) {
	var plato models.Plato
	if err := s.db.WithContext(ctx).First(&plato, id).Error; err != nil {
		return models.Plato{}, translate(err)
	}
	return plato, nil
}

func (s *platoService) CreatePlato(ctx context.Context, input models.PlatoCreate) (models.Plato, error) {
	plato := models.Plato{Nombre: input.Nombre, Precio: input.Precio}
	if err := s.db.WithContext(ctx).Create(&plato).Error; err != nil {
		return models.Plato{}, err
	}
	return plato, nil
}

func (s *platoService) UpdatePlato(ctx context.Context, id int, input models.PlatoUpdate) (models.Plato, error) {
	db := s.db.WithContext(ctx)

	var plato models.Plato
	if err := db.First(&plato, id).Error; err != nil {
		return models.Plato{}, translate(err)
	}
	plato.Nombre = input.Nombre
	plato.Precio = input.Precio
	if err := db.Save(&plato).Error; err != nil {
		return models.Plato{}, err
	}
	return plato, nil
}

func (s *platoService) DeletePlato(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Plato{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *platoService) DeleteAllPlatos(ctx context.Context) (int64, error) {
	return deleteAll[models.Plato](ctx, s.db)
}
