package repository

import (
	"time"

	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Las lecturas resuelven Customer y Product vía join para serialización.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id int64) error
	SoftDelete(id int64, at time.Time) error
	Restore(id int64) error
	List(opts ListOptions) ([]*entity.Order, error)
	Count() (int, error)
}
