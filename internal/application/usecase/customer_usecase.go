package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente tras validar campos y unicidad de email y teléfono.
// Un cliente con borrado lógico sigue ocupando su email y teléfono.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if existing, err := uc.repo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un cliente con ese email", domain.ErrDuplicate)
	}
	if existing, err := uc.repo.GetByPhone(in.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un cliente con ese teléfono", domain.ErrDuplicate)
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	return toCustomerResponse(customer), nil
}

// Update aplica solo los campos presentes, re-verificando unicidad contra
// las demás filas.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	if in.Email != nil {
		if other, err := uc.repo.GetByEmail(*in.Email); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: otro cliente ya usa ese email", domain.ErrDuplicate)
		}
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		if other, err := uc.repo.GetByPhone(*in.Phone); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: otro cliente ya usa ese teléfono", domain.ErrDuplicate)
		}
		customer.Phone = *in.Phone
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina físicamente un cliente.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(p dto.PageRequest) (*dto.CustomerListResponse, error) {
	opts, err := p.Normalize(dto.CustomerDefaultSort, dto.CustomerSortColumns)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	resp := &dto.CustomerListResponse{Customers: items}
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

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
}
