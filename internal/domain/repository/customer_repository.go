package repository

import (
	"time"

	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
	SoftDelete(id int64, at time.Time) error
	Restore(id int64) error
	List(opts ListOptions) ([]*entity.Customer, error)
	Count() (int, error)
}
