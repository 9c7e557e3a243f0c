package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campos ordenables permitidos para listados de pedidos (campo -> columna).
var OrderSortColumns = map[string]string{
	"created_at":  "created_at",
	"quantity":    "quantity",
	"total_price": "total_price",
}

// OrderDefaultSort orden por defecto de los listados de pedidos.
const OrderDefaultSort = "created_at"

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	CustomerID int64 `json:"customer_id" validate:"required"`
	ProductID  int64 `json:"product_id" validate:"required"`
	Quantity   int   `json:"quantity" validate:"required,min=1"`
}

// UpdateOrderRequest entrada parcial para actualizar un pedido.
// Solo la cantidad es mutable; total_price quedó congelado al crear.
type UpdateOrderRequest struct {
	Quantity *int `json:"quantity" validate:"omitempty,min=1"`
}

// OrderCustomer resumen del cliente embebido en la respuesta del pedido.
type OrderCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderProduct resumen del producto embebido en la respuesta del pedido.
type OrderProduct struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderResponse salida de un pedido con cliente y producto resueltos.
type OrderResponse struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  *time.Time      `json:"deleted_at,omitempty"`
	Customer   *OrderCustomer  `json:"customer,omitempty"`
	Product    *OrderProduct   `json:"product,omitempty"`
}

// OrderListResponse listado con metadatos al mismo nivel (nil = sin meta).
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	*ListMeta
}
