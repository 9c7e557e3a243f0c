package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campos ordenables permitidos para listados de productos (campo -> columna).
var ProductSortColumns = map[string]string{
	"name":  "name",
	"price": "price",
}

// ProductDefaultSort orden por defecto de los listados de productos.
const ProductDefaultSort = "name"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stock_quantity" validate:"required,min=0"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
}

// ProductListResponse listado con metadatos al mismo nivel (nil = sin meta).
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	*ListMeta
}
