package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto fabricado en la planta.
type Product struct {
	ID            int64
	Name          string
	Price         decimal.Decimal // precio de venta, nunca negativo
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
