package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido de un cliente sobre un producto.
// TotalPrice se calcula al crear (precio del producto × cantidad) y queda
// congelado: actualizar Quantity después no lo recalcula.
type Order struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	// Cargados vía join en los listados y lecturas; nil si no se resolvieron.
	Customer *Customer
	Product  *Product
}
