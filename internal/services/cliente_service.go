package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"gorm.io/gorm"
)

// ClienteService provides methods to interact with the clientes table
type ClienteService interface {
	ListClientes(ctx context.Context, skip, limit int) ([]models.Cliente, int64, error)
	GetClienteByID(ctx context.Context, id int) (models.Cliente, error)
	CreateCliente(ctx context.Context, input models.ClienteCreate) (models.Cliente, error)
	UpdateCliente(ctx context.Context, id int, input models.ClienteUpdate) (models.Cliente, error)
	DeleteCliente(ctx context.Context, id int) error
	DeleteAllClientes(ctx context.Context) (int64, error)
}

type clienteService struct {
	db *gorm.DB
}

// NewClienteService creates a new instance of ClienteService
func NewClienteService(db *gorm.DB) ClienteService {
	return &clienteService{db: db}
}

func (s *clienteService) ListClientes(ctx context.Context, skip, limit int) ([]models.Cliente, int64, error) {
	return listPage[models.Cliente](ctx, s.db, nil, skip, limit)
}

func (s *clienteService) GetClienteByID(ctx context.Context, id int) (models.Cliente, error) {
	var cliente models.Cliente
	if err := s.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return models.Cliente{}, translate(err)
	}
	return cliente, nil
}

func (s *clienteService) CreateCliente(ctx context.Context, input models.ClienteCreate) (models.Cliente, error) {
	cliente := models.Cliente{
		Nombre: input.Nombre,
		Email:  input.Email,
		Activo: input.ActivoOrDefault(),
	}
	if err := s.db.WithContext(ctx).Create(&cliente).Error; err != nil {
		return models.Cliente{}, duplicateEmail(err)
	}
	return cliente, nil
}

func (s *clienteService) UpdateCliente(ctx context.Context, id int, input models.ClienteUpdate) (models.Cliente, error) {
	db := s.db.WithContext(ctx)

	var cliente models.Cliente
	if err := db.First(&cliente, id).Error; err != nil {
		return models.Cliente{}, translate(err)
	}
	cliente.Nombre = input.Nombre
	cliente.Email = input.Email
	cliente.Activo = input.Activo
	if err := db.Save(&cliente).Error; err != nil {
		return models.Cliente{}, duplicateEmail(err)
	}
	return cliente, nil
}

func (s *clienteService) DeleteCliente(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Cliente{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *clienteService) DeleteAllClientes(ctx context.Context) (int64, error) {
	return deleteAll[models.Cliente](ctx, s.db)
}

func duplicateEmail(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}
