package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/application/usecase"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

func newProductionFixture(t *testing.T) (*usecase.ProductionUseCase, *fakeProductRepo) {
	t.Helper()
	products := newFakeProductRepo()
	production := newFakeProductionRepo()
	tx := &fakeTxRunner{products: products, production: production}
	return usecase.NewProductionUseCase(tx, production), products
}

func TestProductionCreate_FechaValida(t *testing.T) {
	uc, products := newProductionFixture(t)
	require.NoError(t, products.Create(&entity.Product{Name: "Tornillo M8", Price: decimal.RequireFromString("1.00")}))

	record, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		ProductID: 1, QuantityProduced: 200, DateProduced: "2025-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-01-31", record.DateProduced, "la fecha se serializa como YYYY-MM-DD")
	assert.Equal(t, "Tornillo M8", record.ProductName)
	assert.Equal(t, 200, record.QuantityProduced)
}

func TestProductionCreate_FechaInvalida(t *testing.T) {
	uc, products := newProductionFixture(t)
	require.NoError(t, products.Create(&entity.Product{Name: "Tornillo M8", Price: decimal.RequireFromString("1.00")}))

	for _, raw := range []string{"2025-13-01", "31-01-2025", "2025/01/31", "ayer", ""} {
		_, err := uc.Create(context.Background(), dto.CreateProductionRequest{
			ProductID: 1, QuantityProduced: 10, DateProduced: raw,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q debe rechazarse", raw)
	}
}

func TestProductionCreate_ProductoInexistente(t *testing.T) {
	uc, _ := newProductionFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		ProductID: 99, QuantityProduced: 10, DateProduced: "2025-01-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionUpdate_CambiaFecha(t *testing.T) {
	uc, products := newProductionFixture(t)
	require.NoError(t, products.Create(&entity.Product{Name: "Tornillo M8", Price: decimal.RequireFromString("1.00")}))

	record, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		ProductID: 1, QuantityProduced: 200, DateProduced: "2025-01-31",
	})
	require.NoError(t, err)

	newDate := "2025-02-01"
	updated, err := uc.Update(record.ID, dto.UpdateProductionRequest{DateProduced: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", updated.DateProduced)

	bad := "01/02/2025"
	_, err = uc.Update(record.ID, dto.UpdateProductionRequest{DateProduced: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionList_ClaveDelListado(t *testing.T) {
	uc, products := newProductionFixture(t)
	require.NoError(t, products.Create(&entity.Product{Name: "Tornillo M8", Price: decimal.RequireFromString("1.00")}))

	_, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		ProductID: 1, QuantityProduced: 50, DateProduced: "2025-01-31",
	})
	require.NoError(t, err)

	list, err := uc.List(dto.PageRequest{Page: 1, PerPage: 10, IncludeMeta: true})
	require.NoError(t, err)

	raw, err := json.Marshal(list)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Contains(t, envelope, "productions", "el listado se envuelve bajo la clave productions")
	assert.NotContains(t, envelope, "production")
}

func TestProductionGetByID_NoExiste(t *testing.T) {
	uc, _ := newProductionFixture(t)

	_, err := uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
