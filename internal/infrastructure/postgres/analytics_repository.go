package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre la operación de
// planta. Sin caché: cada llamada recalcula contra la base.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// EmployeePerformance suma quantity_produced agrupado por nombre de empleado.
// OJO: el join hereda employees.id = production.product_id del reporte
// original; mezcla espacios de identificadores distintos. Pendiente de
// confirmar con negocio antes de corregirlo.
func (r *AnalyticsRepo) EmployeePerformance(ctx context.Context) ([]repository.EmployeePerformanceRow, error) {
	const query = `
	SELECT e.name, SUM(pr.quantity_produced) AS total_quantity
	FROM employees e
	JOIN production pr ON e.id = pr.product_id
	GROUP BY e.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.EmployeePerformance: %w", err)
	}
	defer rows.Close()

	results := []repository.EmployeePerformanceRow{}
	for rows.Next() {
		var row repository.EmployeePerformanceRow
		if err := rows.Scan(&row.Employee, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("analytics.EmployeePerformance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSellingProducts suma las cantidades pedidas agrupadas por producto,
// de mayor a menor.
func (r *AnalyticsRepo) TopSellingProducts(ctx context.Context) ([]repository.TopProductRow, error) {
	const query = `
	SELECT p.name, SUM(o.quantity) AS total_sold
	FROM products p
	JOIN orders o ON p.id = o.product_id
	GROUP BY p.name
	ORDER BY total_sold DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopSellingProducts: %w", err)
	}
	defer rows.Close()

	results := []repository.TopProductRow{}
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.Product, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("analytics.TopSellingProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CustomerLifetimeValue suma total_price por cliente y filtra los grupos
// que alcanzan el umbral (HAVING >=).
func (r *AnalyticsRepo) CustomerLifetimeValue(ctx context.Context, threshold decimal.Decimal) ([]repository.CustomerValueRow, error) {
	const query = `
	SELECT c.name, SUM(o.total_price) AS lifetime_value
	FROM customers c
	JOIN orders o ON c.id = o.customer_id
	GROUP BY c.name
	HAVING SUM(o.total_price) >= $1`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("analytics.CustomerLifetimeValue: %w", err)
	}
	defer rows.Close()

	results := []repository.CustomerValueRow{}
	for rows.Next() {
		var row repository.CustomerValueRow
		if err := rows.Scan(&row.Customer, &row.LifetimeValue); err != nil {
			return nil, fmt.Errorf("analytics.CustomerLifetimeValue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProductionEfficiency suma quantity_produced por producto para una fecha
// calendario exacta.
func (r *AnalyticsRepo) ProductionEfficiency(ctx context.Context, date time.Time) ([]repository.ProductionEfficiencyRow, error) {
	const query = `
	SELECT p.name, SUM(pr.quantity_produced) AS total_produced
	FROM products p
	JOIN production pr ON p.id = pr.product_id
	WHERE pr.date_produced = $1
	GROUP BY p.name`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("analytics.ProductionEfficiency: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductionEfficiencyRow{}
	for rows.Next() {
		var row repository.ProductionEfficiencyRow
		if err := rows.Scan(&row.Product, &row.TotalProduced); err != nil {
			return nil, fmt.Errorf("analytics.ProductionEfficiency scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
