package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El precio no puede ser negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		Price:         in.Price,
		StockQuantity: *in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return toProductResponse(product), nil
}

// Update aplica solo los campos presentes.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina físicamente un producto.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// List lista productos paginados.
func (uc *ProductUseCase) List(p dto.PageRequest) (*dto.ProductListResponse, error) {
	opts, err := p.Normalize(dto.ProductDefaultSort, dto.ProductSortColumns)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, prod := range list {
		items = append(items, *toProductResponse(prod))
	}
	resp := &dto.ProductListResponse{Products: items}
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

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		DeletedAt:     p.DeletedAt,
	}
}
