package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeePerformanceRow total producido agrupado por empleado.
type EmployeePerformanceRow struct {
	Employee      string
	TotalQuantity int64
}

// TopProductRow total de unidades pedidas agrupado por producto.
type TopProductRow struct {
	Product   string
	TotalSold int64
}

// CustomerValueRow valor acumulado de pedidos por cliente.
type CustomerValueRow struct {
	Customer      string
	LifetimeValue decimal.Decimal
}

// ProductionEfficiencyRow total producido por producto en una fecha.
type ProductionEfficiencyRow struct {
	Product       string
	TotalProduced int64
}

// AnalyticsRepository define consultas agregadas de solo lectura.
// Se recalculan en cada llamada; no hay caché.
type AnalyticsRepository interface {
	EmployeePerformance(ctx context.Context) ([]EmployeePerformanceRow, error)
	TopSellingProducts(ctx context.Context) ([]TopProductRow, error)
	CustomerLifetimeValue(ctx context.Context, threshold decimal.Decimal) ([]CustomerValueRow, error)
	ProductionEfficiency(ctx context.Context, date time.Time) ([]ProductionEfficiencyRow, error)
}
