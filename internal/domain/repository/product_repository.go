package repository

import (
	"time"

	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	SoftDelete(id int64, at time.Time) error
	Restore(id int64) error
	List(opts ListOptions) ([]*entity.Product, error)
	Count() (int, error)
}
