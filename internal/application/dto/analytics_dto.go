package dto

import "github.com/shopspring/decimal"

// AnalyticsResponse envoltorio de todas las respuestas de analítica:
// {"data": [...], "status": "success"}. Data siempre serializa como
// arreglo, nunca null.
type AnalyticsResponse struct {
	Data   any    `json:"data"`
	Status string `json:"status"`
}

// EmployeePerformanceDTO total producido por empleado.
type EmployeePerformanceDTO struct {
	Employee      string `json:"employee"`
	TotalQuantity int64  `json:"total_quantity"`
}

// TopProductDTO total de unidades pedidas por producto.
type TopProductDTO struct {
	Product   string `json:"product"`
	TotalSold int64  `json:"total_sold"`
}

// CustomerValueDTO valor acumulado de pedidos por cliente.
type CustomerValueDTO struct {
	Customer      string          `json:"customer"`
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
}

// ProductionEfficiencyDTO total producido por producto en una fecha.
type ProductionEfficiencyDTO struct {
	Product       string `json:"product"`
	TotalProduced int64  `json:"total_produced"`
}
