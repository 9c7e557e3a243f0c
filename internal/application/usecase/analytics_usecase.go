package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// defaultLifetimeThreshold umbral por defecto del reporte de valor de
// clientes cuando el request no lo especifica.
var defaultLifetimeThreshold = decimal.NewFromInt(1000)

// AnalyticsUseCase reportes agregados de solo lectura.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// EmployeePerformance total producido por empleado.
func (uc *AnalyticsUseCase) EmployeePerformance(ctx context.Context) (*dto.AnalyticsResponse, error) {
	rows, err := uc.repo.EmployeePerformance(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.EmployeePerformanceDTO, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.EmployeePerformanceDTO{Employee: r.Employee, TotalQuantity: r.TotalQuantity})
	}
	return &dto.AnalyticsResponse{Data: data, Status: "success"}, nil
}

// TopSellingProducts productos ordenados por unidades pedidas.
func (uc *AnalyticsUseCase) TopSellingProducts(ctx context.Context) (*dto.AnalyticsResponse, error) {
	rows, err := uc.repo.TopSellingProducts(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.TopProductDTO{Product: r.Product, TotalSold: r.TotalSold})
	}
	return &dto.AnalyticsResponse{Data: data, Status: "success"}, nil
}

// CustomerLifetimeValue clientes cuyo valor acumulado supera el umbral.
// Un umbral vacío usa el valor por defecto; uno negativo es inválido.
func (uc *AnalyticsUseCase) CustomerLifetimeValue(ctx context.Context, threshold *decimal.Decimal) (*dto.AnalyticsResponse, error) {
	th := defaultLifetimeThreshold
	if threshold != nil {
		if threshold.IsNegative() {
			return nil, fmt.Errorf("%w: threshold no puede ser negativo", domain.ErrInvalidInput)
		}
		th = *threshold
	}
	rows, err := uc.repo.CustomerLifetimeValue(ctx, th)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerValueDTO, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.CustomerValueDTO{Customer: r.Customer, LifetimeValue: r.LifetimeValue})
	}
	return &dto.AnalyticsResponse{Data: data, Status: "success"}, nil
}

// ProductionEfficiency total producido por producto en una fecha dada.
// La fecha es obligatoria, en formato YYYY-MM-DD.
func (uc *AnalyticsUseCase) ProductionEfficiency(ctx context.Context, rawDate string) (*dto.AnalyticsResponse, error) {
	if rawDate == "" {
		return nil, fmt.Errorf("%w: el parámetro date es obligatorio", domain.ErrInvalidInput)
	}
	date, err := parseProductionDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	rows, err := uc.repo.ProductionEfficiency(ctx, date)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductionEfficiencyDTO, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.ProductionEfficiencyDTO{Product: r.Product, TotalProduced: r.TotalProduced})
	}
	return &dto.AnalyticsResponse{Data: data, Status: "success"}, nil
}
