package repository

import (
	"time"

	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia para Production (DIP).
type ProductionRepository interface {
	Create(production *entity.Production) error
	GetByID(id int64) (*entity.Production, error)
	Update(production *entity.Production) error
	Delete(id int64) error
	SoftDelete(id int64, at time.Time) error
	Restore(id int64) error
	List(opts ListOptions) ([]*entity.Production, error)
	Count() (int, error)
}
