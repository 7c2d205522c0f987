package models

// Plato represents a dish on the menu
type Plato struct {
	ID     int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre string  `json:"nombre" gorm:"column:nombre;size:100;index"`
	Precio float64 `json:"precio" gorm:"column:precio"`
}

func (Plato) TableName() string {
	return "platos"
}

// PlatoCreate is the payload accepted when creating a dish.
// The identifier is always assigned by the store.
type PlatoCreate struct {
	Nombre string  `json:"nombre" yaml:"nombre" binding:"required,max=100" example:"Arepa"`
	Precio float64 `json:"precio" yaml:"precio" binding:"required,gt=0" example:"50"`
}

// PlatoUpdate is the full-replace payload; ID must match the path id
type PlatoUpdate struct {
	ID     int     `json:"id" example:"1"`
	Nombre string  `json:"nombre" binding:"required,max=100" example:"Arepa"`
	Precio float64 `json:"precio" binding:"required,gt=0" example:"50"`
}
