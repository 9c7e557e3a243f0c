package dto

import "time"

// Campos ordenables permitidos para listados de producción (campo -> columna).
var ProductionSortColumns = map[string]string{
	"date_produced":     "date_produced",
	"quantity_produced": "quantity_produced",
}

// ProductionDefaultSort orden por defecto de los listados de producción.
const ProductionDefaultSort = "date_produced"

// CreateProductionRequest entrada para crear un registro de producción.
// DateProduced llega como "YYYY-MM-DD"; cualquier otra forma es error.
type CreateProductionRequest struct {
	ProductID        int64  `json:"product_id" validate:"required"`
	QuantityProduced int    `json:"quantity_produced" validate:"required,min=1"`
	DateProduced     string `json:"date_produced" validate:"required"`
}

// UpdateProductionRequest entrada parcial para actualizar un registro.
type UpdateProductionRequest struct {
	QuantityProduced *int    `json:"quantity_produced" validate:"omitempty,min=1"`
	DateProduced     *string `json:"date_produced"`
}

// ProductionResponse salida de un registro de producción.
// date_produced se serializa como fecha calendario "YYYY-MM-DD".
type ProductionResponse struct {
	ID               int64      `json:"id"`
	ProductID        int64      `json:"product_id"`
	ProductName      string     `json:"product_name,omitempty"`
	QuantityProduced int        `json:"quantity_produced"`
	DateProduced     string     `json:"date_produced"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// ProductionListResponse listado con metadatos al mismo nivel (nil = sin meta).
type ProductionListResponse struct {
	Production []ProductionResponse `json:"productions"`
	*ListMeta
}
