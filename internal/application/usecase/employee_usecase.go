package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado tras validar campos y unicidad de email y teléfono.
// El constraint de la base es el respaldo ante dos creates concurrentes.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if existing, err := uc.repo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un empleado con ese email", domain.ErrDuplicate)
	}
	if existing, err := uc.repo.GetByPhone(in.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un empleado con ese teléfono", domain.ErrDuplicate)
	}
	now := time.Now()
	employee := &entity.Employee{
		Name:      in.Name,
		Position:  in.Position,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return toEmployeeResponse(employee), nil
}

// Update aplica solo los campos presentes. La unicidad se re-verifica
// excluyendo la propia fila; sin campos reconocidos la fila queda igual.
func (uc *EmployeeUseCase) Update(id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	if in.Email != nil {
		if other, err := uc.repo.GetByEmail(*in.Email); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: otro empleado ya usa ese email", domain.ErrDuplicate)
		}
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		if other, err := uc.repo.GetByPhone(*in.Phone); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: otro empleado ya usa ese teléfono", domain.ErrDuplicate)
		}
		employee.Phone = *in.Phone
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina físicamente un empleado.
func (uc *EmployeeUseCase) Delete(id int64) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// List lista empleados paginados; la allow-list de orden se valida antes
// de tocar la base.
func (uc *EmployeeUseCase) List(p dto.PageRequest) (*dto.EmployeeListResponse, error) {
	opts, err := p.Normalize(dto.EmployeeDefaultSort, dto.EmployeeSortColumns)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	resp := &dto.EmployeeListResponse{Employees: items}
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

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		DeletedAt: e.DeletedAt,
	}
}
