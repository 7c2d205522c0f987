package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"gorm.io/gorm"
)

// PedidoService provides methods to interact with the pedidos table
type PedidoService interface {
	ListPedidos(ctx context.Context, skip, limit int) ([]models.Pedido, int64, error)
	// ListPedidosByCliente pages through the orders referencing one customer
	ListPedidosByCliente(ctx context.Context, clienteID, skip, limit int) ([]models.Pedido, int64, error)
	GetPedidoByID(ctx context.Context, id int) (models.Pedido, error)
	CreatePedido(ctx context.Context, input models.PedidoCreate) (models.Pedido, error)
	UpdatePedido(ctx context.Context, id int, input models.PedidoUpdate) (models.Pedido, error)
	DeletePedido(ctx context.Context, id int) error
	DeleteAllPedidos(ctx context.Context) (int64, error)
}

type pedidoService struct {
	db *gorm.DB
}

// NewPedidoService creates a new instance of PedidoService
func NewPedidoService(db *gorm.DB) PedidoService {
	return &pedidoService{db: db}
}

func (s *pedidoService) ListPedidos(ctx context.Context, skip, limit int) ([]models.Pedido, int64, error) {
	return listPage[models.Pedido](ctx, s.db, nil, skip, limit)
}

func (s *pedidoService) ListPedidosByCliente(ctx context.Context, clienteID, skip, limit int) ([]models.Pedido, int64, error) {
	byCliente := func(db *gorm.DB) *gorm.DB {
		return db.Where("id_cliente = ?", clienteID)
	}
	return listPage[models.Pedido](ctx, s.db, byCliente, skip, limit)
}

func (s *pedidoService) GetPedidoByID(ctx context.Context, id int) (models.Pedido, error) {
	var pedido models.Pedido
	if err := s.db.WithContext(ctx).First(&pedido, id).Error; err != nil {
		return models.Pedido{}, translate(err)
	}
	return pedido, nil
}

func (s *pedidoService) CreatePedido(ctx context.Context, input models.PedidoCreate) (models.Pedido, error) {
	pedido := models.Pedido{
		IDCliente: input.IDCliente,
		Fecha:     input.Fecha,
		Monto:     input.Monto,
	}
	if err := s.db.WithContext(ctx).Create(&pedido).Error; err != nil {
		return models.Pedido{}, err
	}
	return pedido, nil
}

func (s *pedidoService) UpdatePedido(ctx context.Context, id int, input models.PedidoUpdate) (models.Pedido, error) {
	db := s.db.WithContext(ctx)

	var pedido models.Pedido
	if err := db.First(&pedido, id).Error; err != nil {
		return models.Pedido{}, translate(err)
	}
	pedido.IDCliente = input.IDCliente
	pedido.Fecha = input.Fecha
	pedido.Monto = input.Monto
	if err := db.Save(&pedido).Error; err != nil {
		return models.Pedido{}, err
	}
	return pedido, nil
}

func (s *pedidoService) DeletePedido(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Pedido{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pedidoService) DeleteAllPedidos(ctx context.Context) (int64, error) {
	return deleteAll[models.Pedido](ctx, s.db)
}
