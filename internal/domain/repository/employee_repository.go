package repository

import (
	"time"

	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	GetByPhone(phone string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id int64) error
	SoftDelete(id int64, at time.Time) error
	Restore(id int64) error
	List(opts ListOptions) ([]*entity.Employee, error)
	Count() (int, error)
}
