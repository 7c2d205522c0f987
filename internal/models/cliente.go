package models

// Cliente represents a restaurant customer
type Cliente struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;size:100;index"`
	Email  string `json:"email" gorm:"column:email;size:255;uniqueIndex;not null"`
	// no gorm default: an explicit false must reach the table
	Activo bool `json:"activo" gorm:"column:activo;not null"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// ClienteCreate is the payload accepted when registering a customer.
// Activo defaults to true when omitted.
type ClienteCreate struct {
	Nombre string `json:"nombre" binding:"required,max=100" example:"María Pérez"`
	Email  string `json:"email" binding:"required,email,max=255" example:"maria@example.com"`
	Activo *bool  `json:"activo" example:"true"`
}

// ActivoOrDefault resolves the optional active flag
func (c ClienteCreate) ActivoOrDefault() bool {
	if c.Activo == nil {
		return true
	}
	return *c.Activo
}

// ClienteUpdate is the full-replace payload; ID must match the path id
type ClienteUpdate struct {
	ID     int    `json:"id" example:"1"`
	Nombre string `json:"nombre" binding:"required,max=100" example:"María Pérez"`
	Email  string `json:"email" binding:"required,email,max=255" example:"maria@example.com"`
	Activo bool   `json:"activo" example:"true"`
}
