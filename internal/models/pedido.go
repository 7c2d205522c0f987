package models

// Pedido represents an order placed by a customer.
// IDCliente is an advisory reference: no foreign key is enforced.
type Pedido struct {
	ID        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	IDCliente int     `json:"id_cliente" gorm:"column:id_cliente;index"`
	Fecha     string  `json:"fecha" gorm:"column:fecha;index"`
	Monto     float64 `json:"monto" gorm:"column:monto;not null"`
}

func (Pedido) TableName() string {
	return "pedidos"
}

// PedidoCreate is the payload accepted when placing an order
type PedidoCreate struct {
	IDCliente int     `json:"id_cliente" binding:"required,gt=0" example:"1"`
	Fecha     string  `json:"fecha" binding:"max=50" example:"2024-05-01"`
	Monto     float64 `json:"monto" binding:"gte=0" example:"120.5"`
}

// PedidoUpdate is the full-replace payload; ID must match the path id
type PedidoUpdate struct {
	ID        int     `json:"id" example:"1"`
	IDCliente int     `json:"id_cliente" binding:"required,gt=0" example:"1"`
	Fecha     string  `json:"fecha" binding:"max=50" example:"2024-05-01"`
	Monto     float64 `json:"monto" binding:"gte=0" example:"120.5"`
}
