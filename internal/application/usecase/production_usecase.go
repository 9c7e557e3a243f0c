package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

const productionDateLayout = "2006-01-02"

// ProductionTxRunner abre una transacción con los repos que necesita la
// creación de registros de producción.
type ProductionTxRunner interface {
	RunProduction(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		productionRepo repository.ProductionRepository,
	) error) error
}

// ProductionUseCase casos de uso para registros de producción.
type ProductionUseCase struct {
	tx   ProductionTxRunner
	repo repository.ProductionRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(tx ProductionTxRunner, repo repository.ProductionRepository) *ProductionUseCase {
	return &ProductionUseCase{tx: tx, repo: repo}
}

func parseProductionDate(raw string) (time.Time, error) {
	date, err := time.Parse(productionDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date_produced debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return date, nil
}

// Create crea un registro de producción validando que el producto exista.
func (uc *ProductionUseCase) Create(ctx context.Context, in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := parseProductionDate(in.DateProduced)
	if err != nil {
		return nil, err
	}
	var created *entity.Production
	err = uc.tx.RunProduction(ctx, func(
		products repository.ProductRepository,
		production repository.ProductionRepository,
	) error {
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %d no existe", domain.ErrInvalidInput, in.ProductID)
		}
		now := time.Now()
		record := &entity.Production{
			ProductID:        in.ProductID,
			ProductName:      product.Name,
			QuantityProduced: in.QuantityProduced,
			DateProduced:     date,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := production.Create(record); err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductionResponse(created), nil
}

// GetByID obtiene un registro de producción por ID.
func (uc *ProductionUseCase) GetByID(id int64) (*dto.ProductionResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: producción %d", domain.ErrNotFound, id)
	}
	return toProductionResponse(record), nil
}

// Update actualiza cantidad y/o fecha de un registro de producción.
func (uc *ProductionUseCase) Update(id int64, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: producción %d", domain.ErrNotFound, id)
	}
	if in.QuantityProduced != nil {
		record.QuantityProduced = *in.QuantityProduced
	}
	if in.DateProduced != nil {
		date, err := parseProductionDate(*in.DateProduced)
		if err != nil {
			return nil, err
		}
		record.DateProduced = date
	}
	record.UpdatedAt = time.Now()
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	return toProductionResponse(record), nil
}

// Delete elimina físicamente un registro de producción.
func (uc *ProductionUseCase) Delete(id int64) error {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("%w: producción %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// List lista registros de producción paginados.
func (uc *ProductionUseCase) List(p dto.PageRequest) (*dto.ProductionListResponse, error) {
	opts, err := p.Normalize(dto.ProductionDefaultSort, dto.ProductionSortColumns)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toProductionResponse(r))
	}
	resp := &dto.ProductionListResponse{Production: items}
	if p.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		page, perPage := p.NormalizedPage()
		resp.ListMeta = dto.NewListMeta(total, page, perPage)
	}
	return resp, nil
}

func toProductionResponse(r *entity.Production) *dto.ProductionResponse {
	if r == nil {
		return nil
	}
	return &dto.ProductionResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		ProductName:      r.ProductName,
		QuantityProduced: r.QuantityProduced,
		DateProduced:     r.DateProduced.Format(productionDateLayout),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		DeletedAt:        r.DeletedAt,
	}
}
