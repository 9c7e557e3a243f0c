package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/factory-pro/internal/application/usecase"
	"github.com/tu-usuario/factory-pro/internal/domain"
)

// AnalyticsHandler maneja los reportes agregados (solo admin).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// EmployeePerformance GET /analytics/employee-performance
func (h *AnalyticsHandler) EmployeePerformance(c *fiber.Ctx) error {
	resp, err := h.uc.EmployeePerformance(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// TopSellingProducts GET /analytics/top-products
func (h *AnalyticsHandler) TopSellingProducts(c *fiber.Ctx) error {
	resp, err := h.uc.TopSellingProducts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// CustomerLifetimeValue GET /analytics/customer-lifetime-value?threshold=1000
func (h *AnalyticsHandler) CustomerLifetimeValue(c *fiber.Ctx) error {
	var threshold *decimal.Decimal
	if raw := c.Query("threshold"); raw != "" {
		th, err := decimal.NewFromString(raw)
		if err != nil {
			return writeError(c, fmt.Errorf("%w: threshold debe ser numérico", domain.ErrInvalidInput))
		}
		threshold = &th
	}
	resp, err := h.uc.CustomerLifetimeValue(c.Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// ProductionEfficiency GET /analytics/production-efficiency?date=2025-01-31
func (h *AnalyticsHandler) ProductionEfficiency(c *fiber.Ctx) error {
	resp, err := h.uc.ProductionEfficiency(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
